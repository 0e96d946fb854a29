package geolocation

import (
	"context"
	"errors"
	"strings"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

// Chain asks each locator in turn and returns the first fix
type Chain []ports.Locator

// Ensure Chain implements Locator
var _ ports.Locator = Chain(nil)

// Locate tries every locator in order. If none can locate at all the result
// is application.ErrGeolocationUnsupported; otherwise the failure reasons are
// combined into one LocationError.
func (c Chain) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	var reasons []string
	for _, l := range c {
		p, err := l.Locate(ctx, opts)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, application.ErrGeolocationUnsupported) {
			continue
		}
		if ctx.Err() != nil {
			return domain.Point{}, err
		}

		var locErr *application.LocationError
		if errors.As(err, &locErr) {
			reasons = append(reasons, locErr.Reason)
		} else {
			reasons = append(reasons, err.Error())
		}
	}

	if len(reasons) == 0 {
		return domain.Point{}, application.ErrGeolocationUnsupported
	}
	return domain.Point{}, &application.LocationError{Reason: strings.Join(reasons, "; ")}
}

// New builds the locator used by the front ends: the configured position
// when there is one, then the IP lookup, behind a cache. A configured
// position answers every request whatever its HighAccuracy setting. With
// neither available the result reports geolocation as unsupported.
func New(fixed *domain.Point, lookup ports.Locator) ports.Locator {
	var chain Chain
	if fixed != nil {
		chain = append(chain, Fixed{Point: *fixed})
	}
	if lookup != nil {
		chain = append(chain, lookup)
	}
	if len(chain) == 0 {
		return Unsupported{}
	}
	return NewCached(chain)
}
