package application

import (
	"errors"
	"fmt"
	"strings"

	"verge/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "gardenID" -> "garden ID")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "gardenID" -> "garden ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"gardenID":     "garden ID",
		"content":      "content",
		"description":  "description",
		"query":        "query",
		"radiusKm":     "radius",
		"dataPath":     "data path",
		"typeFilter":   "type filter",
		"locationNear": "location",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateRadius checks that a radius is one of the selectable choices
func ValidateRadius(fieldName string, radiusKm float64) error {
	if !domain.ValidRadius(radiusKm) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be one of %s km, got: %v", formatFieldName(fieldName), domain.RadiusChoicesString(), radiusKm),
		}
	}
	return nil
}

// ValidateGardens checks every garden and rejects invalid records and
// duplicate IDs (the first occurrence wins). It returns the accepted gardens
// in their original order and a joined RecordError for each rejection.
func ValidateGardens(gardens []domain.Garden) ([]domain.Garden, error) {
	accepted := make([]domain.Garden, 0, len(gardens))
	seen := make(map[string]bool, len(gardens))
	var errs []error

	for i, g := range gardens {
		if err := g.Validate(); err != nil {
			errs = append(errs, &RecordError{Index: i, ID: g.ID, Err: err})
			continue
		}
		if seen[g.ID] {
			errs = append(errs, &RecordError{Index: i, ID: g.ID, Err: ErrDuplicateID})
			continue
		}
		seen[g.ID] = true
		g.Normalize()
		accepted = append(accepted, g)
	}

	return accepted, errors.Join(errs...)
}
