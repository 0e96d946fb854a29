package views

import "fmt"

// cardHeight is the number of lines one garden card takes, border included
const cardHeight = 5

// Paginator pages the garden card list
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 3
	}
	return &Paginator{
		pageSize: pageSize,
	}
}

// PageSizeFor returns how many cards fit in the given number of lines
func PageSizeFor(lines int) int {
	return max(lines/cardHeight, 1)
}

// SetPageSize changes the page size, keeping the cursor visible
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 || size == p.pageSize {
		return
	}
	p.pageSize = size
	p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
}

// PageSize returns the number of items per page
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetTotal sets the total number of items. The cursor is clamped to the new
// range.
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = max(total-1, 0)
	}
	p.ensureCursorInPage()
}

// Total returns the number of items being paged
func (p *Paginator) Total() int {
	return p.totalItems
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor sets the cursor position
func (p *Paginator) SetCursor(pos int) {
	if pos >= p.totalItems {
		pos = p.totalItems - 1
	}
	p.cursor = max(pos, 0)
	p.ensureCursorInPage()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor > 0 {
		p.cursor--
		p.ensureCursorInPage()
		return true
	}
	return false
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor < p.totalItems-1 {
		p.cursor++
		p.ensureCursorInPage()
		return true
	}
	return false
}

// VisibleRange returns the start and end indices for the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

// TotalPages returns the total number of pages
func (p *Paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage moves to the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize < p.totalItems {
		p.pageOffset += p.pageSize
		p.cursor = p.pageOffset
		return true
	}
	return false
}

// PrevPage moves to the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset > 0 {
		p.pageOffset = max(p.pageOffset-p.pageSize, 0)
		p.cursor = p.pageOffset
		return true
	}
	return false
}

// Reset moves back to the first item
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// Label renders "page 2/3", or "" when everything fits on one page
func (p *Paginator) Label() string {
	if p.TotalPages() <= 1 {
		return ""
	}
	return fmt.Sprintf("page %d/%d", p.CurrentPage(), p.TotalPages())
}

func (p *Paginator) ensureCursorInPage() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
