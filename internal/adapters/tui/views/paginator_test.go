package views

import "testing"

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages())
	}

	for range 3 {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("expected cursor 3 on page 2, got %d on %d", p.Cursor(), p.CurrentPage())
	}

	start, end := p.VisibleRange()
	if start != 3 || end != 6 {
		t.Errorf("expected range 3-6, got %d-%d", start, end)
	}

	if !p.NextPage() || p.Cursor() != 6 {
		t.Errorf("expected next page to move cursor to 6, got %d", p.Cursor())
	}
	if p.NextPage() {
		t.Error("expected no page after the last")
	}
	if p.CursorDown() {
		t.Error("expected cursor to stop at the last item")
	}

	if !p.PrevPage() || p.Cursor() != 3 {
		t.Errorf("expected prev page to move cursor to 3, got %d", p.Cursor())
	}
}

func TestPaginator_SetTotalClampsCursor(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)
	p.SetCursor(6)

	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", p.Cursor())
	}
	if p.CurrentPage() != 1 {
		t.Errorf("expected page 1, got %d", p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor 0 for empty list, got %d", p.Cursor())
	}
	if p.TotalPages() != 1 {
		t.Errorf("expected 1 page for empty list, got %d", p.TotalPages())
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)
	p.SetCursor(7)

	p.SetPageSize(5)
	if p.PageSize() != 5 {
		t.Fatalf("expected page size 5, got %d", p.PageSize())
	}
	start, _ := p.VisibleRange()
	if start != 5 {
		t.Errorf("expected page to start at 5, got %d", start)
	}
}

func TestPaginator_Label(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(3)
	if p.Label() != "" {
		t.Errorf("expected no label for a single page, got %q", p.Label())
	}

	p.SetTotal(4)
	if p.Label() != "page 1/2" {
		t.Errorf("unexpected label %q", p.Label())
	}
}

func TestPageSizeFor(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 1},
		{lines: 4, want: 1},
		{lines: 10, want: 2},
		{lines: 27, want: 5},
	}

	for _, tt := range tests {
		if got := PageSizeFor(tt.lines); got != tt.want {
			t.Errorf("PageSizeFor(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}
