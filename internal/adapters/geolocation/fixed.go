package geolocation

import (
	"context"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

// Fixed always reports the same configured position
type Fixed struct {
	Point domain.Point
}

// Ensure Fixed implements Locator
var _ ports.Locator = Fixed{}

// Locate returns the configured position
func (f Fixed) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	if err := ctx.Err(); err != nil {
		return domain.Point{}, err
	}
	return f.Point, nil
}

// Unsupported is used when no position source is available
type Unsupported struct{}

// Ensure Unsupported implements Locator
var _ ports.Locator = Unsupported{}

// Locate always fails with application.ErrGeolocationUnsupported
func (Unsupported) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	return domain.Point{}, application.ErrGeolocationUnsupported
}
