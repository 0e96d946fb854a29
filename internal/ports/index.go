package ports

import (
	"context"

	"verge/internal/domain"
)

// CatalogIndex is a garden catalog stored in a database file. It is a
// GardenSource that can also be rebuilt from another dataset.
type CatalogIndex interface {
	GardenSource

	// Lifecycle
	Open(path string) error
	Close() error

	// UpToDate reports whether the stored catalog was built from gardens
	UpToDate(gardens []domain.Garden) (bool, error)

	// Rebuild replaces the stored catalog with the given gardens
	Rebuild(ctx context.Context, gardens []domain.Garden) (*domain.ImportStats, error)
}
