package application

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"verge/internal/domain"
)

type stubSource struct {
	gardens []domain.Garden
	err     error
}

func (s stubSource) LoadAll(ctx context.Context) ([]domain.Garden, error) {
	return s.gardens, s.err
}

func TestLoadCatalog_RejectsRecordsIndividually(t *testing.T) {
	bad := testGarden("2")
	bad.FloodRisk = "extreme"

	src := stubSource{
		gardens: []domain.Garden{testGarden("1"), bad, testGarden("3")},
		err:     &RecordError{Index: 7, ID: "9", Err: errors.New("missing field lat")},
	}

	var buf bytes.Buffer
	cat, err := LoadCatalog(context.Background(), src, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("expected 2 gardens, got %d", cat.Len())
	}
	logged := buf.String()
	if !contains(logged, `"garden_id":"9"`) || !contains(logged, `"garden_id":"2"`) {
		t.Errorf("expected both rejections logged, got %s", logged)
	}
}

func TestLoadCatalog_SourceFailure(t *testing.T) {
	src := stubSource{err: errors.New("file not found")}

	_, err := LoadCatalog(context.Background(), src, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error")
	}
	if !contains(err.Error(), "failed to load gardens") {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestCatalog_Get(t *testing.T) {
	cat := NewCatalog([]domain.Garden{testGarden("1"), testGarden("2")})

	g, err := cat.Get("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != "2" {
		t.Errorf("expected garden 2, got %s", g.ID)
	}

	_, err = cat.Get("42")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_AllReturnsCopies(t *testing.T) {
	cat := NewCatalog([]domain.Garden{testGarden("1")})

	all := cat.All()
	all[0].Name = "changed"
	all[0].Comments = append(all[0].Comments, domain.Comment{ID: "x"})

	g, _ := cat.Get("1")
	if g.Name != "Garden 1" || len(g.Comments) != 0 {
		t.Errorf("catalog state leaked through All(): %+v", g)
	}
}

func TestCatalog_PrependComment(t *testing.T) {
	g := testGarden("1")
	g.Comments = []domain.Comment{
		{ID: "c1", Type: domain.CommentMaintenance},
		{ID: "c2", Type: domain.CommentConcern},
	}
	cat := NewCatalog([]domain.Garden{g})

	updated, err := cat.PrependComment("1", domain.Comment{ID: "c3", Type: domain.CommentObservation})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Comments) != 3 || updated.Comments[0].ID != "c3" {
		t.Errorf("expected new comment first, got %v", updated.Comments)
	}

	if _, err := cat.PrependComment("9", domain.Comment{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_ConcurrentComments(t *testing.T) {
	cat := NewCatalog([]domain.Garden{testGarden("1")})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = cat.PrependComment("1", domain.Comment{Type: domain.CommentObservation})
		}()
		go func() {
			defer wg.Done()
			_ = cat.Filter(domain.NewFilter())
		}()
	}
	wg.Wait()

	g, _ := cat.Get("1")
	if len(g.Comments) != 50 {
		t.Errorf("expected 50 comments, got %d", len(g.Comments))
	}
}

func TestCatalog_Reports(t *testing.T) {
	cat := NewCatalog([]domain.Garden{testGarden("1")})

	if err := cat.AddReport(domain.MaintenanceReport{GardenID: "1", Description: "Weeds"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cat.AddReport(domain.MaintenanceReport{GardenID: "2"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if got := cat.Reports("1"); len(got) != 1 || got[0].Description != "Weeds" {
		t.Errorf("unexpected reports %v", got)
	}
}

func TestNewCatalog_SkipsDuplicates(t *testing.T) {
	first := testGarden("1")
	second := testGarden("1")
	second.Name = "Second"

	cat := NewCatalog([]domain.Garden{first, second})
	if cat.Len() != 1 {
		t.Fatalf("expected 1 garden, got %d", cat.Len())
	}
	g, _ := cat.Get("1")
	if g.Name != "Garden 1" {
		t.Errorf("expected first occurrence kept, got %q", g.Name)
	}
}
