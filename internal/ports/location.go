package ports

import (
	"context"
	"time"

	"verge/internal/domain"
)

// LocateOptions mirrors the options a host geolocation service accepts
type LocateOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration // how old a cached fix may be
}

// DefaultLocateOptions asks for a precise fix within 10s, accepting one up
// to 5 minutes old
var DefaultLocateOptions = LocateOptions{
	HighAccuracy: true,
	Timeout:      10 * time.Second,
	MaximumAge:   5 * time.Minute,
}

// Locator answers a single request for the user's current position.
// It does not track position continuously.
type Locator interface {
	Locate(ctx context.Context, opts LocateOptions) (domain.Point, error)
}
