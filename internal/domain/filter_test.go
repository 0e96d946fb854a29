package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGardens() []Garden {
	return []Garden{
		{ID: "1", Name: "Mooloolaba Esplanade Verge", Location: "Mooloolaba Esplanade, Mooloolaba QLD", Type: TypeVerge, Lat: -26.8241352382323, Lng: 153.0549933062039},
		{ID: "2", Name: "Nambour Creek Bioswale", Location: "Currie Street, Nambour QLD", Type: TypeBioswale, Lat: 45, Lng: 60},
		{ID: "3", Name: "Maroochydore Native Verge", Location: "Duporth Avenue, Maroochydore QLD", Type: TypeVerge, Lat: 70, Lng: 25},
		{ID: "4", Name: "Caloundra Pollinator Verge", Location: "Bulcock Street, Caloundra QLD", Type: TypeVerge, Lat: 35, Lng: 80},
		{ID: "5", Name: "Kawana Wetland Bioswale", Location: "Nicklin Way, Kawana QLD", Type: TypeBioswale, Lat: 55, Lng: 15},
	}
}

func ids(gardens []Garden) []string {
	out := make([]string, len(gardens))
	for i, g := range gardens {
		out[i] = g.ID
	}
	return out
}

func TestFilter_NoActiveFiltersReturnsEverything(t *testing.T) {
	gardens := sampleGardens()

	got := NewFilter().Apply(gardens)

	assert.Equal(t, gardens, got)
}

func TestFilter_EmptyInput(t *testing.T) {
	f := Filter{Type: FilterBioswale, Query: "swale", Near: &Point{}, RadiusKm: 20}
	got := f.Apply(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_Apply(t *testing.T) {
	user := Point{Lat: -26.82, Lng: 153.05}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "bioswales only",
			filter: Filter{Type: FilterBioswale},
			want:   []string{"2", "5"},
		},
		{
			name:   "verges only",
			filter: Filter{Type: FilterVerge},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "search bioswale keyword",
			filter: Filter{Type: FilterAll, Query: "bioswale"},
			want:   []string{"2", "5"},
		},
		{
			name:   "search swale keyword",
			filter: Filter{Type: FilterAll, Query: "SWALE"},
			want:   []string{"2", "5"},
		},
		{
			name:   "search garden keyword matches verges",
			filter: Filter{Type: FilterAll, Query: "community garden"},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "search raw type code",
			filter: Filter{Type: FilterAll, Query: "bs"},
			want:   []string{"2", "5"},
		},
		{
			name:   "search by location",
			filter: Filter{Type: FilterAll, Query: "nambour"},
			want:   []string{"2"},
		},
		{
			name:   "search combined with type filter",
			filter: Filter{Type: FilterVerge, Query: "qld"},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "no match",
			filter: Filter{Type: FilterAll, Query: "xyz"},
			want:   []string{},
		},
		{
			name:   "nearby within 5km",
			filter: Filter{Type: FilterAll, Near: &user, RadiusKm: 5},
			want:   []string{"1"},
		},
		{
			name:   "nearby but wrong type",
			filter: Filter{Type: FilterBioswale, Near: &user, RadiusKm: 20},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleGardens())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMatchesQuery_NameSubstring(t *testing.T) {
	g := Garden{Name: "Buderim Rain Garden", Location: "x", Type: TypeBioswale}
	for _, q := range []string{"buderim", "RAIN", "m Rain G", "Buderim Rain Garden"} {
		assert.True(t, MatchesQuery(g, q), "query %q", q)
	}
}

func TestMatchesProximity_IffWithinRadius(t *testing.T) {
	user := Point{Lat: -26.82, Lng: 153.05}
	for _, g := range sampleGardens() {
		for _, r := range RadiusChoices {
			want := Distance(user, g.Position()) <= r
			assert.Equal(t, want, MatchesProximity(g, &user, r), "garden %s radius %v", g.ID, r)
		}
		assert.True(t, MatchesProximity(g, nil, 1))
	}
}

func TestMatchesProximity_BoundaryInclusive(t *testing.T) {
	user := Point{Lat: 0, Lng: 0}
	g := Garden{Lat: 0, Lng: 1}
	assert.True(t, MatchesProximity(g, &user, Distance(user, g.Position())))
}

func TestParseRadius(t *testing.T) {
	r, err := ParseRadius("10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, r)

	r, err = ParseRadius("2km")
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)

	_, err = ParseRadius("3")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseRadius("far")
	assert.Error(t, err)
}

func TestNextRadius(t *testing.T) {
	assert.Equal(t, 10.0, NextRadius(5))
	assert.Equal(t, 1.0, NextRadius(20))
	assert.Equal(t, DefaultRadiusKm, NextRadius(7))
	assert.Equal(t, "1/2/5/10/20", RadiusChoicesString())
}
