package views

import (
	"math"
	"strings"

	"verge/internal/adapters/tui/styles"
	"verge/internal/domain"
)

const (
	// TileAttribution must be shown wherever the map is shown
	TileAttribution = "© OpenStreetMap contributors"

	// minSpanDeg keeps a single garden (or a tight cluster) from filling the plot
	minSpanDeg = 0.01
)

// MapMarker is a garden placed on the plot grid
type MapMarker struct {
	Index int // index into the plotted gardens
	Row   int
	Col   int
}

// MapViewport returns the box the plot covers: the gardens' bounds padded by
// a tenth on each side, or a box around the default centre when there are no
// gardens
func MapViewport(gardens []domain.Garden) domain.Bounds {
	b, ok := domain.BoundsOf(gardens)
	if !ok {
		c := domain.DefaultMapCenter
		half := minSpanDeg * 5
		return domain.Bounds{
			Min: domain.Point{Lat: c.Lat - half, Lng: c.Lng - half},
			Max: domain.Point{Lat: c.Lat + half, Lng: c.Lng + half},
		}
	}

	padLat := max((b.Max.Lat-b.Min.Lat)*0.1, minSpanDeg/2)
	padLng := max((b.Max.Lng-b.Min.Lng)*0.1, minSpanDeg/2)
	b.Min.Lat -= padLat
	b.Max.Lat += padLat
	b.Min.Lng -= padLng
	b.Max.Lng += padLng
	return b
}

// PlotGardens projects each garden onto a rows x cols grid, north up
func PlotGardens(gardens []domain.Garden, rows, cols int) []MapMarker {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	vp := MapViewport(gardens)
	spanLat := vp.Max.Lat - vp.Min.Lat
	spanLng := vp.Max.Lng - vp.Min.Lng

	markers := make([]MapMarker, 0, len(gardens))
	for i, g := range gardens {
		row := int(math.Round((vp.Max.Lat - g.Lat) / spanLat * float64(rows-1)))
		col := int(math.Round((g.Lng - vp.Min.Lng) / spanLng * float64(cols-1)))
		markers = append(markers, MapMarker{
			Index: i,
			Row:   min(max(row, 0), rows-1),
			Col:   min(max(col, 0), cols-1),
		})
	}
	return markers
}

// MarkerGlyph returns the single-letter map marker for a garden type
func MarkerGlyph(t domain.GardenType) string {
	if t == domain.TypeBioswale {
		return "B"
	}
	return "V"
}

// RenderMap draws the gardens as a framed ASCII plot with a legend and the
// tile attribution. selected is highlighted; -1 highlights nothing.
func RenderMap(gardens []domain.Garden, selected, width, height int) string {
	cols := max(width-2, 10)
	rows := max(height, 5)

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	markers := PlotGardens(gardens, rows, cols)
	for _, mk := range markers {
		if mk.Index == selected {
			continue
		}
		g := gardens[mk.Index]
		glyph := MarkerGlyph(g.Type)
		cell := styles.Badge.UnsetPadding().Background(styles.TypeColor(g.Type)).Render(glyph)
		if g.FloodRisk == domain.FloodHigh {
			cell = styles.FloodMarker.Render(glyph)
		}
		if grid[mk.Row][mk.Col] != " " {
			cell = styles.MutedText.Render("*")
		}
		grid[mk.Row][mk.Col] = cell
	}
	// the selected garden is drawn last so it is never hidden
	if selected >= 0 && selected < len(markers) {
		mk := markers[selected]
		grid[mk.Row][mk.Col] = styles.MapSelected.Render(MarkerGlyph(gardens[selected].Type))
	}

	var plot strings.Builder
	for r, row := range grid {
		plot.WriteString(strings.Join(row, ""))
		if r < rows-1 {
			plot.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(styles.MapFrame.Render(plot.String()))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	b.WriteString("\n")
	b.WriteString(RenderMuted(TileAttribution))
	return b.String()
}

func renderLegend() string {
	parts := []string{
		styles.Badge.UnsetPadding().Background(styles.TypeVerge).Render("V") + " " + RenderMuted("Verge Garden"),
		styles.Badge.UnsetPadding().Background(styles.TypeBioswale).Render("B") + " " + RenderMuted("Bioswale"),
		styles.FloodMarker.Render("V/B") + " " + RenderMuted("High flood risk"),
		styles.MutedText.Render("*") + " " + RenderMuted("Several gardens"),
	}
	return strings.Join(parts, "   ")
}
