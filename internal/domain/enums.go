package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when a value falls outside its enumeration
var ErrInvalidValue = errors.New("invalid value")

// GardenType is the site category code used in the dataset
type GardenType string

const (
	TypeVerge    GardenType = "VG" // Verge garden
	TypeBioswale GardenType = "BS" // Bioswale
)

// Valid reports whether t is one of the known garden types
func (t GardenType) Valid() bool {
	return t == TypeVerge || t == TypeBioswale
}

// Label returns the display name for the garden type
func (t GardenType) Label() string {
	switch t {
	case TypeVerge:
		return "Verge Garden"
	case TypeBioswale:
		return "Bioswale"
	default:
		return "Unknown"
	}
}

// HealthLevel is the overall health category of a garden
type HealthLevel string

const (
	HealthGood HealthLevel = "good"
	HealthFair HealthLevel = "fair"
	HealthPoor HealthLevel = "poor"
)

// Valid reports whether h is a known health level
func (h HealthLevel) Valid() bool {
	switch h {
	case HealthGood, HealthFair, HealthPoor:
		return true
	}
	return false
}

// FloodRisk is the flood-risk category of a garden
type FloodRisk string

const (
	FloodLow    FloodRisk = "low"
	FloodMedium FloodRisk = "medium"
	FloodHigh   FloodRisk = "high"
)

// Valid reports whether r is a known flood risk
func (r FloodRisk) Valid() bool {
	switch r {
	case FloodLow, FloodMedium, FloodHigh:
		return true
	}
	return false
}

// PlantStatus is the condition of a single planting
type PlantStatus string

const (
	PlantHealthy        PlantStatus = "healthy"
	PlantNeedsAttention PlantStatus = "needs-attention"
	PlantPoor           PlantStatus = "poor"
)

// Valid reports whether s is a known plant status
func (s PlantStatus) Valid() bool {
	switch s {
	case PlantHealthy, PlantNeedsAttention, PlantPoor:
		return true
	}
	return false
}

// Label returns the status with dashes replaced by spaces ("needs attention")
func (s PlantStatus) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// CommentType classifies a comment
type CommentType string

const (
	CommentMaintenance CommentType = "maintenance"
	CommentObservation CommentType = "observation"
	CommentConcern     CommentType = "concern"
)

// Valid reports whether t is a known comment type
func (t CommentType) Valid() bool {
	switch t {
	case CommentMaintenance, CommentObservation, CommentConcern:
		return true
	}
	return false
}

// TypeFilter selects which garden types are shown
type TypeFilter string

const (
	FilterAll      TypeFilter = "all"
	FilterVerge    TypeFilter = TypeFilter(TypeVerge)
	FilterBioswale TypeFilter = TypeFilter(TypeBioswale)
)

// TypeFilters lists the filter chips in display order
var TypeFilters = []TypeFilter{FilterAll, FilterVerge, FilterBioswale}

// Label returns the chip label for the filter
func (f TypeFilter) Label() string {
	switch f {
	case FilterVerge:
		return "Verge Gardens"
	case FilterBioswale:
		return "Bioswales"
	default:
		return "All Gardens"
	}
}

// Next cycles to the following filter chip
func (f TypeFilter) Next() TypeFilter {
	for i, tf := range TypeFilters {
		if tf == f {
			return TypeFilters[(i+1)%len(TypeFilters)]
		}
	}
	return FilterAll
}

// ParseTypeFilter accepts "all", a type code, or the spelled-out type name.
// An empty string means all.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "vg", "verge", "verges":
		return FilterVerge, nil
	case "bs", "bioswale", "bioswales":
		return FilterBioswale, nil
	default:
		return "", fmt.Errorf("%w: type filter %q (expected all, VG or BS)", ErrInvalidValue, s)
	}
}
