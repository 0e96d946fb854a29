package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RadiusChoices are the selectable proximity radii in kilometres
var RadiusChoices = []float64{1, 2, 5, 10, 20}

// DefaultRadiusKm is the radius used until the user picks another
const DefaultRadiusKm = 5.0

// ParseRadius parses a radius and checks it is one of RadiusChoices
func ParseRadius(s string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "km"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid radius %q: %w", s, err)
	}
	if !ValidRadius(r) {
		return 0, fmt.Errorf("%w: radius %v km (choose one of %s)", ErrInvalidValue, r, RadiusChoicesString())
	}
	return r, nil
}

// ValidRadius reports whether r is one of RadiusChoices
func ValidRadius(r float64) bool {
	return slices.Contains(RadiusChoices, r)
}

// NextRadius cycles to the following radius choice
func NextRadius(r float64) float64 {
	i := slices.Index(RadiusChoices, r)
	if i < 0 {
		return DefaultRadiusKm
	}
	return RadiusChoices[(i+1)%len(RadiusChoices)]
}

// RadiusChoicesString renders the choices as "1/2/5/10/20"
func RadiusChoicesString() string {
	parts := make([]string, len(RadiusChoices))
	for i, r := range RadiusChoices {
		parts[i] = strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strings.Join(parts, "/")
}

// Filter combines the category, text and proximity filters.
// A garden is kept only if it passes all three.
type Filter struct {
	Type     TypeFilter
	Query    string
	Near     *Point // nil disables the proximity filter
	RadiusKm float64
}

// NewFilter returns a filter that passes everything
func NewFilter() Filter {
	return Filter{Type: FilterAll, RadiusKm: DefaultRadiusKm}
}

// Apply returns the gardens passing the filter, in their original order
func (f Filter) Apply(gardens []Garden) []Garden {
	out := make([]Garden, 0, len(gardens))
	for _, g := range gardens {
		if f.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}

// Matches reports whether g passes every active filter
func (f Filter) Matches(g Garden) bool {
	return MatchesType(g, f.Type) &&
		MatchesQuery(g, f.Query) &&
		MatchesProximity(g, f.Near, f.RadiusKm)
}

// MatchesType passes everything for FilterAll (or an empty filter),
// otherwise requires the garden's type to equal the filter
func MatchesType(g Garden, tf TypeFilter) bool {
	if tf == "" || tf == FilterAll {
		return true
	}
	return string(g.Type) == string(tf)
}

// MatchesQuery is a permissive substring heuristic, not a ranked search.
// The query matches on name, on location, on type keywords
// ("verge"/"garden" for VG, "bioswale"/"swale" for BS), or when it contains
// the raw type code.
func MatchesQuery(g Garden, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	switch {
	case strings.Contains(strings.ToLower(g.Name), q):
		return true
	case strings.Contains(strings.ToLower(g.Location), q):
		return true
	case g.Type == TypeVerge && (strings.Contains(q, "verge") || strings.Contains(q, "garden")):
		return true
	case g.Type == TypeBioswale && (strings.Contains(q, "bioswale") || strings.Contains(q, "swale")):
		return true
	case g.Type != "" && strings.Contains(q, strings.ToLower(string(g.Type))):
		return true
	}
	return false
}

// MatchesProximity passes everything when near is nil, otherwise requires
// the garden to lie within radiusKm (inclusive)
func MatchesProximity(g Garden, near *Point, radiusKm float64) bool {
	if near == nil {
		return true
	}
	return Distance(*near, g.Position()) <= radiusKm
}
