package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidRecord          = errors.New("invalid record")
	ErrDuplicateID            = errors.New("duplicate garden ID")
	ErrGeolocationUnsupported = errors.New("geolocation is not supported")
	ErrLocationUnavailable    = errors.New("location unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RecordError describes a dataset record rejected at load time
type RecordError struct {
	Index int    // position in the source dataset
	ID    string // may be empty if the record had none
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("record %d rejected: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d (id %q) rejected: %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// LocationError represents a failed position request. Reason is the opaque
// message reported by the location provider.
type LocationError struct {
	Reason string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("unable to retrieve your location: %s", e.Reason)
}

func (e *LocationError) Is(target error) bool {
	return target == ErrLocationUnavailable
}

// RecordErrors unpacks an error made only of RecordErrors (possibly joined).
// It returns false if err contains anything else, which callers treat as a
// failure of the whole load.
func RecordErrors(err error) ([]*RecordError, bool) {
	if err == nil {
		return nil, true
	}

	var recErr *RecordError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*RecordError
		for _, e := range joined.Unwrap() {
			nested, ok := RecordErrors(e)
			if !ok {
				return nil, false
			}
			out = append(out, nested...)
		}
		return out, true
	}
	if errors.As(err, &recErr) {
		return []*RecordError{recErr}, true
	}
	return nil, false
}
