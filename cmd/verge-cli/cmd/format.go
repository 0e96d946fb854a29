package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"verge/internal/domain"
)

func typeLabel(t domain.GardenType) string {
	if t == domain.TypeBioswale {
		return color.New(color.FgBlue).Sprint(string(t))
	}
	return color.New(color.FgGreen).Sprint(string(t))
}

func healthLabel(h domain.HealthLevel) string {
	switch h {
	case domain.HealthGood:
		return color.New(color.FgGreen).Sprint(h)
	case domain.HealthFair:
		return color.New(color.FgYellow).Sprint(h)
	default:
		return color.New(color.FgRed).Sprint(h)
	}
}

func floodLabel(r domain.FloodRisk) string {
	switch r {
	case domain.FloodHigh:
		return color.New(color.FgRed, color.Bold).Sprint("HIGH")
	case domain.FloodMedium:
		return color.New(color.FgYellow).Sprint("medium")
	default:
		return color.New(color.FgGreen).Sprint("low")
	}
}

func plantLabel(s domain.PlantStatus) string {
	label := domain.TitleCase(s.Label())
	switch s {
	case domain.PlantHealthy:
		return color.New(color.FgGreen).Sprint(label)
	case domain.PlantNeedsAttention:
		return color.New(color.FgYellow).Sprint(label)
	default:
		return color.New(color.FgRed).Sprint(label)
	}
}

func muted(s string) string {
	return color.New(color.Faint).Sprint(s)
}

func bar(percent float64, width int) string {
	filled := int(max(0, min(percent, 100)) / 100 * float64(width))
	return strings.Repeat("█", filled) + muted(strings.Repeat("░", width-filled))
}

func writeGarden(w io.Writer, g domain.Garden, reports []domain.MaintenanceReport) {
	fmt.Fprintf(w, "%s  %s\n", color.New(color.Bold).Sprint(g.Name), typeLabel(g.Type))
	fmt.Fprintf(w, "%s\n", g.Location)
	fmt.Fprintf(w, "%s\n\n", muted(g.Position().String()))

	score := g.HealthScore()
	fmt.Fprintf(w, "Health        %s %s %d%%\n", healthLabel(g.Health), bar(float64(score), 20), score)
	fmt.Fprintf(w, "Soil moisture %g%%\n", g.SoilMoisture)
	fmt.Fprintf(w, "pH            %g\n", g.PH)
	fmt.Fprintf(w, "Water depth   %gcm (%.0f%% capacity)\n", g.WaterDepth, g.WaterCapacity())

	headline, note := g.FloodBanner()
	fmt.Fprintf(w, "Flood risk    %s  %s", floodLabel(g.FloodRisk), headline)
	if note != "" {
		fmt.Fprintf(w, " - %s", note)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\nPlants (%d)\n", len(g.Plants))
	for _, p := range g.Plants {
		fmt.Fprintf(w, "  %s %s  %s\n", p.Name, muted("("+p.ScientificName+")"), plantLabel(p.Status))
	}

	fmt.Fprintf(w, "\nComments (%d)\n", len(g.Comments))
	writeComments(w, g.Comments)

	if len(reports) > 0 {
		fmt.Fprintf(w, "\nMaintenance reports (%d)\n", len(reports))
		for _, r := range reports {
			fmt.Fprintf(w, "  %s  %s\n", muted(r.LodgedAt.Format("2/1/2006 15:04")), r.Description)
		}
	}
}

func writeComments(w io.Writer, comments []domain.Comment) {
	for _, c := range comments {
		fmt.Fprintf(w, "  %s %s %s\n", color.New(color.Bold).Sprint(c.Author), muted(c.Date), muted("["+string(c.Type)+"]"))
		fmt.Fprintf(w, "    %s\n", c.Content)
	}
}
