package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"verge/internal/application"
	"verge/internal/domain"
)

func newTestCatalogModel(locator stubLocator) *CatalogModel {
	m := NewCatalogModel(testCatalog(), locator, &stubOpener{}, zerolog.Nop())
	m.SetSize(100, 40)
	return m
}

func gardenIDs(gardens []domain.Garden) []string {
	ids := make([]string, len(gardens))
	for i, g := range gardens {
		ids[i] = g.ID
	}
	return ids
}

func TestCatalogModel_ShowsAllGardensInitially(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	if len(m.Gardens()) != 3 {
		t.Fatalf("expected 3 gardens, got %d", len(m.Gardens()))
	}
	if m.Summary() != "" {
		t.Errorf("expected no counter without search or location, got %q", m.Summary())
	}
	if m.Filter().RadiusKm != domain.DefaultRadiusKm {
		t.Errorf("expected default radius, got %v", m.Filter().RadiusKm)
	}
}

func TestCatalogModel_TabCyclesTypeFilter(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	tests := []struct {
		want    domain.TypeFilter
		wantIDs []string
	}{
		{domain.FilterVerge, []string{"1", "3"}},
		{domain.FilterBioswale, []string{"2"}},
		{domain.FilterAll, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.Filter().Type != tt.want {
			t.Fatalf("expected filter %s, got %s", tt.want, m.Filter().Type)
		}
		got := gardenIDs(m.Gardens())
		if len(got) != len(tt.wantIDs) {
			t.Fatalf("filter %s: expected %v, got %v", tt.want, tt.wantIDs, got)
		}
		for i := range got {
			if got[i] != tt.wantIDs[i] {
				t.Errorf("filter %s: expected %v, got %v", tt.want, tt.wantIDs, got)
			}
		}
	}
}

func TestCatalogModel_SearchNarrowsList(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	m.Update(runeKey("/"))
	typeText(m, "bulimba")

	if got := gardenIDs(m.Gardens()); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected only garden 1, got %v", got)
	}
	if m.Summary() != "1 garden found" {
		t.Errorf("unexpected counter %q", m.Summary())
	}

	// keys are typed into the search box, not treated as commands
	m.Update(runeKey("q"))
	if m.Filter().Query != "bulimbaq" {
		t.Errorf("expected q to be typed, got query %q", m.Filter().Query)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Gardens()) != 3 {
		t.Errorf("expected esc to clear the search, got %d gardens", len(m.Gardens()))
	}
}

func TestCatalogModel_LocateEnablesProximity(t *testing.T) {
	m := newTestCatalogModel(stubLocator{point: domain.Point{Lat: -27.4698, Lng: 153.0251}})

	_, cmd := m.Update(runeKey("L"))
	if cmd == nil {
		t.Fatal("expected a locate command")
	}
	m.Update(cmd())

	if m.Filter().Near == nil {
		t.Fatal("expected proximity filter to be on")
	}
	if got := gardenIDs(m.Gardens()); len(got) != 2 {
		t.Fatalf("expected 2 gardens within 5km, got %v", got)
	}
	if m.Summary() != "2 gardens found within 5km" {
		t.Errorf("unexpected counter %q", m.Summary())
	}

	// 5 -> 10 -> 20 -> 1
	for range 3 {
		m.Update(runeKey("r"))
	}
	if m.Filter().RadiusKm != 1 {
		t.Fatalf("expected radius 1, got %v", m.Filter().RadiusKm)
	}
	if got := gardenIDs(m.Gardens()); len(got) != 1 || got[0] != "1" {
		t.Errorf("expected only garden 1 within 1km, got %v", got)
	}

	m.Update(runeKey("x"))
	if m.Filter().Near != nil || len(m.Gardens()) != 3 {
		t.Errorf("expected x to clear the location")
	}
}

func TestCatalogModel_LocateFailureLeavesProximityOff(t *testing.T) {
	m := newTestCatalogModel(stubLocator{err: &application.LocationError{Reason: "timeout expired"}})

	_, cmd := m.Update(runeKey("L"))
	m.Update(cmd())

	if m.Filter().Near != nil {
		t.Error("expected proximity filter to stay off")
	}
	if !m.MessageErr || !contains(m.Message, "timeout expired") {
		t.Errorf("expected error message, got %q", m.Message)
	}
	if len(m.Gardens()) != 3 {
		t.Errorf("expected all gardens, got %d", len(m.Gardens()))
	}
}

func TestCatalogModel_LocateUnsupported(t *testing.T) {
	m := NewCatalogModel(testCatalog(), nil, nil, zerolog.Nop())

	_, cmd := m.Update(runeKey("L"))
	msg := cmd()
	errMsg, ok := msg.(locateErrMsg)
	if !ok {
		t.Fatalf("expected locateErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.err, application.ErrGeolocationUnsupported) {
		t.Errorf("expected ErrGeolocationUnsupported, got %v", errMsg.err)
	}
}

func TestCatalogModel_CopyCoordinates(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m.Update(runeKey("j"))
	m.Update(runeKey("y"))

	want := domain.Point{Lat: -27.48, Lng: 153.04}.String()
	if copied != want {
		t.Errorf("expected %q copied, got %q", want, copied)
	}
	if !contains(m.Message, "Copied") {
		t.Errorf("expected confirmation, got %q", m.Message)
	}
}

func TestCatalogModel_EnterOpensDetail(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	m.Update(runeKey("j"))
	m.Update(runeKey("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SwitchToDetailMsg)
	if !ok {
		t.Fatalf("expected SwitchToDetailMsg, got %T", cmd())
	}
	if msg.GardenID != "3" {
		t.Errorf("expected garden 3, got %s", msg.GardenID)
	}
}

func TestCatalogModel_ToggleMap(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	m.Update(runeKey("m"))
	if m.Mode() != ModeMap {
		t.Fatal("expected map mode")
	}
	if !contains(m.View(), TileAttribution) {
		t.Error("expected attribution in map view")
	}

	m.Update(runeKey("m"))
	if m.Mode() != ModeList {
		t.Error("expected list mode")
	}
}

func TestCatalogModel_OpenInBrowser(t *testing.T) {
	opener := &stubOpener{}
	m := NewCatalogModel(testCatalog(), nil, opener, zerolog.Nop())

	m.Update(runeKey("o"))
	if len(opener.opened) != 1 || opener.opened[0].Lat != -27.4698 {
		t.Errorf("expected garden 1 opened, got %v", opener.opened)
	}
}

func TestCatalogModel_GardenUpdated(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})

	g := testGardens()[1]
	g.Comments = []domain.Comment{{ID: "new", Type: domain.CommentObservation}}
	m.Update(GardenUpdatedMsg{Garden: g})

	if len(m.Gardens()[1].Comments) != 1 {
		t.Errorf("expected updated garden in list")
	}
}

func TestCatalogModel_ViewShowsChipsAndCards(t *testing.T) {
	m := newTestCatalogModel(stubLocator{})
	view := m.View()

	for _, want := range []string{"All Gardens", "Verge Gardens", "Bioswales", "Bulimba Verge Garden", "Radius 5km"} {
		if !contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}
