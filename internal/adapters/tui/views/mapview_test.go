package views

import (
	"math"
	"testing"

	"verge/internal/domain"
)

func TestMapViewport_Empty(t *testing.T) {
	vp := MapViewport(nil)
	c := domain.Point{Lat: (vp.Min.Lat + vp.Max.Lat) / 2, Lng: (vp.Min.Lng + vp.Max.Lng) / 2}

	if math.Abs(c.Lat-domain.DefaultMapCenter.Lat) > 1e-9 || math.Abs(c.Lng-domain.DefaultMapCenter.Lng) > 1e-9 {
		t.Errorf("expected default centre, got %v", c)
	}
}

func TestMapViewport_PadsBounds(t *testing.T) {
	gardens := testGardens()
	vp := MapViewport(gardens)

	for _, g := range gardens {
		if g.Lat <= vp.Min.Lat || g.Lat >= vp.Max.Lat || g.Lng <= vp.Min.Lng || g.Lng >= vp.Max.Lng {
			t.Errorf("garden %s at %v not strictly inside %v", g.ID, g.Position(), vp)
		}
	}
}

func TestPlotGardens(t *testing.T) {
	gardens := testGardens()
	markers := PlotGardens(gardens, 20, 40)

	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}
	for _, mk := range markers {
		if mk.Row < 0 || mk.Row >= 20 || mk.Col < 0 || mk.Col >= 40 {
			t.Errorf("marker %d out of grid: %+v", mk.Index, mk)
		}
	}

	// Burleigh is south-east of Brisbane: lower and further right
	brisbane, burleigh := markers[0], markers[2]
	if burleigh.Row <= brisbane.Row {
		t.Errorf("expected southern garden lower on the plot: %+v vs %+v", burleigh, brisbane)
	}
	if burleigh.Col <= brisbane.Col {
		t.Errorf("expected eastern garden further right: %+v vs %+v", burleigh, brisbane)
	}
}

func TestPlotGardens_SingleGarden(t *testing.T) {
	markers := PlotGardens(testGardens()[:1], 11, 21)

	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if markers[0].Row != 5 || markers[0].Col != 10 {
		t.Errorf("expected single garden centred, got %+v", markers[0])
	}
}

func TestPlotGardens_EmptyGrid(t *testing.T) {
	if got := PlotGardens(testGardens(), 0, 10); got != nil {
		t.Errorf("expected nil for empty grid, got %v", got)
	}
}

func TestMarkerGlyph(t *testing.T) {
	if MarkerGlyph(domain.TypeVerge) != "V" || MarkerGlyph(domain.TypeBioswale) != "B" {
		t.Error("unexpected marker glyphs")
	}
}

func TestRenderMap(t *testing.T) {
	out := RenderMap(testGardens(), 0, 60, 12)

	for _, want := range []string{TileAttribution, "Verge Garden", "Bioswale", "High flood risk"} {
		if !contains(out, want) {
			t.Errorf("expected %q in map output", want)
		}
	}
}

func TestRenderMap_NoGardens(t *testing.T) {
	out := RenderMap(nil, -1, 40, 8)
	if !contains(out, TileAttribution) {
		t.Error("expected attribution even with no gardens")
	}
}
