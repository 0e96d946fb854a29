package geolocation

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"verge/internal/domain"
	"verge/internal/ports"
)

// Cached reuses the last successful fix while it is younger than the
// request's MaximumAge, and lets concurrent requests share one lookup.
type Cached struct {
	inner ports.Locator
	now   func() time.Time
	group singleflight.Group

	mu    sync.Mutex
	last  domain.Point
	at    time.Time
	valid bool
}

// Ensure Cached implements Locator
var _ ports.Locator = (*Cached)(nil)

// NewCached wraps inner with a position cache
func NewCached(inner ports.Locator) *Cached {
	return &Cached{inner: inner, now: time.Now}
}

// Locate returns the cached fix if fresh enough, otherwise asks inner.
// Concurrent callers share one lookup that is bounded by opts.Timeout, not
// by any single caller's context; each caller still returns as soon as its
// own context is done.
func (c *Cached) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	if p, ok := c.fresh(opts.MaximumAge); ok {
		return p, nil
	}

	ch := c.group.DoChan("locate", func() (interface{}, error) {
		lookupCtx := context.WithoutCancel(ctx)
		if opts.Timeout > 0 {
			var cancel context.CancelFunc
			lookupCtx, cancel = context.WithTimeout(lookupCtx, opts.Timeout)
			defer cancel()
		}

		p, err := c.inner.Locate(lookupCtx, opts)
		if err != nil {
			return domain.Point{}, err
		}

		c.mu.Lock()
		c.last, c.at, c.valid = p, c.now(), true
		c.mu.Unlock()
		return p, nil
	})

	select {
	case <-ctx.Done():
		return domain.Point{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Point{}, res.Err
		}
		return res.Val.(domain.Point), nil
	}
}

func (c *Cached) fresh(maxAge time.Duration) (domain.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid || maxAge <= 0 {
		return domain.Point{}, false
	}
	if c.now().Sub(c.at) > maxAge {
		return domain.Point{}, false
	}
	return c.last, true
}
