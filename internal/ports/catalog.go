package ports

import (
	"context"

	"verge/internal/domain"
)

// GardenSource loads the full garden dataset. It is called once at startup;
// implementations may return the valid gardens together with an error that
// describes rejected records.
type GardenSource interface {
	LoadAll(ctx context.Context) ([]domain.Garden, error)
}

// AuthorResolver decides who a new comment is attributed to
type AuthorResolver interface {
	Resolve() string
}

// MapOpener shows a position on an external web map
type MapOpener interface {
	// MapURL returns the web map URL for a position
	MapURL(p domain.Point) string

	// Open opens the position in the user's browser
	Open(p domain.Point) error
}
