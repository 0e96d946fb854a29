package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"verge/internal/domain"
	"verge/internal/ports"
)

// Catalog holds the gardens for one session. The garden list is fixed after
// load; only comments and the report log change.
type Catalog struct {
	mu      sync.RWMutex
	gardens []domain.Garden
	byID    map[string]int
	reports []domain.MaintenanceReport
}

// NewCatalog creates a catalog from already validated gardens
func NewCatalog(gardens []domain.Garden) *Catalog {
	c := &Catalog{
		gardens: make([]domain.Garden, 0, len(gardens)),
		byID:    make(map[string]int, len(gardens)),
	}
	for _, g := range gardens {
		if _, dup := c.byID[g.ID]; dup {
			continue
		}
		g = g.Clone()
		g.Normalize()
		c.byID[g.ID] = len(c.gardens)
		c.gardens = append(c.gardens, g)
	}
	return c
}

// LoadCatalog loads every garden from src, rejects invalid records one by one
// and logs each rejection. It fails only if the source itself fails.
func LoadCatalog(ctx context.Context, src ports.GardenSource, logger zerolog.Logger) (*Catalog, error) {
	log := logger.With().Str("component", "catalog").Logger()

	gardens, err := src.LoadAll(ctx)
	if err != nil {
		recs, ok := RecordErrors(err)
		if !ok {
			return nil, fmt.Errorf("failed to load gardens: %w", err)
		}
		logRejections(log, recs)
	}

	accepted, err := ValidateGardens(gardens)
	if err != nil {
		recs, _ := RecordErrors(err)
		logRejections(log, recs)
	}

	log.Info().Int("gardens", len(accepted)).Msg("catalog loaded")
	return NewCatalog(accepted), nil
}

func logRejections(log zerolog.Logger, recs []*RecordError) {
	for _, r := range recs {
		log.Warn().
			Int("index", r.Index).
			Str("garden_id", r.ID).
			Err(r.Err).
			Msg("garden record rejected")
	}
}

// All returns a copy of every garden in dataset order
func (c *Catalog) All() []domain.Garden {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Garden, len(c.gardens))
	for i, g := range c.gardens {
		out[i] = g.Clone()
	}
	return out
}

// Len returns the number of gardens
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.gardens)
}

// Get returns a copy of the garden with the given ID
func (c *Catalog) Get(id string) (domain.Garden, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Garden{}, fmt.Errorf("garden %q: %w", id, ErrNotFound)
	}
	return c.gardens[i].Clone(), nil
}

// Filter applies f to the current gardens
func (c *Catalog) Filter(f domain.Filter) []domain.Garden {
	return f.Apply(c.All())
}

// PrependComment adds cm as the newest comment of the garden and returns the
// updated garden
func (c *Catalog) PrependComment(id string, cm domain.Comment) (domain.Garden, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Garden{}, fmt.Errorf("garden %q: %w", id, ErrNotFound)
	}
	c.gardens[i].PrependComment(cm)
	return c.gardens[i].Clone(), nil
}

// AddReport records a maintenance report for an existing garden
func (c *Catalog) AddReport(r domain.MaintenanceReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[r.GardenID]; !ok {
		return fmt.Errorf("garden %q: %w", r.GardenID, ErrNotFound)
	}
	c.reports = append(c.reports, r)
	return nil
}

// Reports returns the reports lodged for a garden, oldest first
func (c *Catalog) Reports(gardenID string) []domain.MaintenanceReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.MaintenanceReport
	for _, r := range c.reports {
		if r.GardenID == gardenID {
			out = append(out, r)
		}
	}
	return out
}
