package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

func testGardens() []domain.Garden {
	return []domain.Garden{
		{
			ID: "1", Name: "Bulimba Verge Garden", Location: "Oxford St, Bulimba QLD",
			Type: domain.TypeVerge, Health: domain.HealthGood, FloodRisk: domain.FloodLow,
			SoilMoisture: 45, PH: 6.5, WaterDepth: 4,
			Lat: -27.4698, Lng: 153.0251,
			Plants: []domain.Plant{
				{Name: "Lomandra", ScientificName: "Lomandra longifolia", Status: domain.PlantHealthy},
			},
			Comments: []domain.Comment{
				{ID: "c1", Author: "Sarah M.", Date: "1/3/2025", Content: "Mulched", Type: domain.CommentMaintenance},
			},
		},
		{
			ID: "2", Name: "Norman Creek Bioswale", Location: "Woolloongabba QLD",
			Type: domain.TypeBioswale, Health: domain.HealthFair, FloodRisk: domain.FloodHigh,
			SoilMoisture: 80, PH: 7.1, WaterDepth: 18,
			Lat: -27.48, Lng: 153.04,
		},
		{
			ID: "3", Name: "Burleigh Verge", Location: "Burleigh Heads QLD",
			Type: domain.TypeVerge, Health: domain.HealthPoor, FloodRisk: domain.FloodMedium,
			SoilMoisture: 20, PH: 5.8, WaterDepth: 9,
			Lat: -28.09, Lng: 153.45,
		},
	}
}

func testCatalog() *application.Catalog {
	return application.NewCatalog(testGardens())
}

type stubLocator struct {
	point domain.Point
	err   error
}

func (s stubLocator) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	return s.point, s.err
}

type fixedAuthor string

func (a fixedAuthor) Resolve() string { return string(a) }

type stubOpener struct {
	opened []domain.Point
}

func (o *stubOpener) MapURL(p domain.Point) string {
	return "https://www.openstreetmap.org/?mlat=" + p.String()
}

func (o *stubOpener) Open(p domain.Point) error {
	o.opened = append(o.opened, p)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(runeKey(string(r)))
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
