package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"verge/internal/application"
	"verge/internal/domain"
)

// FilterResult contains the gardens that passed the filter
type FilterResult struct {
	Gardens []domain.Garden
	Summary string // empty when no search or location is active
}

// FilterGardensCommand runs the filter engine over the session catalog
type FilterGardensCommand struct {
	catalog *application.Catalog
	Filter  domain.Filter
}

// NewFilterGardensCommand creates a new FilterGardensCommand
func NewFilterGardensCommand(catalog *application.Catalog, filter domain.Filter) *FilterGardensCommand {
	return &FilterGardensCommand{
		catalog: catalog,
		Filter:  filter,
	}
}

// Validate checks the type filter and, when proximity is on, the radius
func (c *FilterGardensCommand) Validate() error {
	switch c.Filter.Type {
	case "", domain.FilterAll, domain.FilterVerge, domain.FilterBioswale:
	default:
		return &application.ValidationError{
			Field:   "typeFilter",
			Message: fmt.Sprintf("unknown type filter: %s", c.Filter.Type),
		}
	}

	if c.Filter.Near != nil {
		if !c.Filter.Near.InRange() {
			return &application.ValidationError{
				Field:   "locationNear",
				Message: fmt.Sprintf("location out of range: %s", c.Filter.Near),
			}
		}
		return application.ValidateRadius("radiusKm", c.Filter.RadiusKm)
	}
	return nil
}

// Execute runs the filter gardens command
func (c *FilterGardensCommand) Execute(ctx context.Context) (*FilterResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	gardens := c.catalog.Filter(c.Filter)

	return &FilterResult{
		Gardens: gardens,
		Summary: ResultsSummary(len(gardens), c.Filter),
	}, nil
}

// ResultsSummary renders the results counter, e.g. "3 gardens found within 5km".
// It is empty when neither a search nor a location is active.
func ResultsSummary(n int, f domain.Filter) string {
	if f.Query == "" && f.Near == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(n))
	if n == 1 {
		b.WriteString(" garden found")
	} else {
		b.WriteString(" gardens found")
	}
	if f.Near != nil {
		b.WriteString(" within ")
		b.WriteString(strconv.FormatFloat(f.RadiusKm, 'f', -1, 64))
		b.WriteString("km")
	}
	return b.String()
}
