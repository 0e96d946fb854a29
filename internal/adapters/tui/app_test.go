package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

type stubLocator struct {
	point domain.Point
}

func (s stubLocator) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	return s.point, nil
}

type fixedAuthor string

func (a fixedAuthor) Resolve() string { return string(a) }

func newTestApp() *App {
	cat := application.NewCatalog([]domain.Garden{
		{ID: "1", Name: "Bulimba Verge Garden", Location: "Bulimba QLD", Type: domain.TypeVerge,
			Health: domain.HealthGood, FloodRisk: domain.FloodLow, Lat: -27.45, Lng: 153.06},
		{ID: "2", Name: "Norman Creek Bioswale", Location: "Woolloongabba QLD", Type: domain.TypeBioswale,
			Health: domain.HealthFair, FloodRisk: domain.FloodHigh, Lat: -27.49, Lng: 153.04},
	})
	return NewApp(Deps{
		Catalog:         cat,
		Locator:         stubLocator{point: domain.Point{Lat: -27.45, Lng: 153.06}},
		Authors:         fixedAuthor("Noah C."),
		Logger:          zerolog.Nop(),
		DefaultRadiusKm: 2,
	})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the app and runs any resulting command once
func send(a *App, msg tea.Msg) {
	_, cmd := a.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		a.Update(next)
	}
}

func TestApp_SwitchesViews(t *testing.T) {
	a := newTestApp()
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if a.State() != ViewCatalog {
		t.Fatalf("expected catalog view, got %v", a.State())
	}

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.State() != ViewDetail {
		t.Fatalf("expected detail view, got %v", a.State())
	}

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.State() != ViewCatalog {
		t.Fatalf("expected catalog view after esc, got %v", a.State())
	}

	send(a, runeKey("?"))
	if a.State() != ViewHelp {
		t.Fatalf("expected help view, got %v", a.State())
	}

	send(a, runeKey("?"))
	if a.State() != ViewCatalog {
		t.Errorf("expected help to close, got %v", a.State())
	}
}

func TestApp_DefaultRadius(t *testing.T) {
	a := newTestApp()

	if a.catalog.Filter().RadiusKm != 2 {
		t.Errorf("expected radius 2, got %v", a.catalog.Filter().RadiusKm)
	}
}

func TestApp_LocationResultAfterLeavingCatalog(t *testing.T) {
	a := newTestApp()

	_, locate := a.Update(runeKey("L"))
	if locate == nil {
		t.Fatal("expected locate command")
	}

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.State() != ViewDetail {
		t.Fatalf("expected detail view, got %v", a.State())
	}

	// the fix arrives while the detail view is open
	a.Update(locate())

	if a.State() != ViewDetail {
		t.Errorf("expected to stay on detail view")
	}
	if a.catalog.Filter().Near == nil {
		t.Error("expected the catalog to apply the location")
	}
	if len(a.catalog.Gardens()) != 1 {
		t.Errorf("expected 1 garden within 2km, got %d", len(a.catalog.Gardens()))
	}
}

func TestApp_ViewRendersCurrentState(t *testing.T) {
	a := newTestApp()

	if !contains(a.View(), "Norman Creek Bioswale") {
		t.Error("expected catalog cards in view")
	}

	send(a, runeKey("?"))
	if !contains(a.View(), "Verge Help") {
		t.Error("expected help view")
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
