package commands

import (
	"context"
	"errors"
	"fmt"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

// LocateResult contains the user's position
type LocateResult struct {
	Position domain.Point
	Message  string
}

// LocateCommand makes a single request for the user's current position
type LocateCommand struct {
	locator ports.Locator
	Options ports.LocateOptions
}

// NewLocateCommand creates a new LocateCommand with the default options
func NewLocateCommand(locator ports.Locator) *LocateCommand {
	return &LocateCommand{
		locator: locator,
		Options: ports.DefaultLocateOptions,
	}
}

// Execute runs the locate command. Failures come back as
// ErrGeolocationUnsupported or a LocationError; there is no retry.
func (c *LocateCommand) Execute(ctx context.Context) (*LocateResult, error) {
	if c.locator == nil {
		return nil, application.ErrGeolocationUnsupported
	}

	p, err := c.locator.Locate(ctx, c.Options)
	if err != nil {
		return nil, locationFailure(err)
	}
	if !p.InRange() {
		return nil, &application.LocationError{Reason: fmt.Sprintf("position out of range: %s", p)}
	}

	return &LocateResult{
		Position: p,
		Message:  fmt.Sprintf("Location found: %s", p),
	}, nil
}

func locationFailure(err error) error {
	switch {
	case errors.Is(err, application.ErrGeolocationUnsupported),
		errors.Is(err, application.ErrLocationUnavailable):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &application.LocationError{Reason: "timeout expired"}
	default:
		return &application.LocationError{Reason: err.Error()}
	}
}
