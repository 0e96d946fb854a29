package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		want  float64
		delta float64
	}{
		{
			name:  "identical points",
			a:     Point{Lat: -26.82, Lng: 153.05},
			b:     Point{Lat: -26.82, Lng: 153.05},
			want:  0,
			delta: 0,
		},
		{
			name:  "one degree of longitude on the equator",
			a:     Point{Lat: 0, Lng: 0},
			b:     Point{Lat: 0, Lng: 1},
			want:  EarthRadiusKm * math.Pi / 180,
			delta: 1e-9,
		},
		{
			name:  "London to Paris",
			a:     Point{Lat: 51.5074, Lng: -0.1278},
			b:     Point{Lat: 48.8566, Lng: 2.3522},
			want:  343.5,
			delta: 1.0,
		},
		{
			name:  "antipodes",
			a:     Point{Lat: 0, Lng: 0},
			b:     Point{Lat: 0, Lng: 180},
			want:  EarthRadiusKm * math.Pi,
			delta: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []Point{
		{Lat: -26.8241352382323, Lng: 153.0549933062039},
		{Lat: 45, Lng: 60},
		{Lat: 70, Lng: 25},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 95, Lng: 200}, // out of range inputs are still plain numbers
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9, "distance(%v, %v)", a, b)
		}
	}
}

func TestDistance_NearbyGarden(t *testing.T) {
	user := Point{Lat: -26.82, Lng: 153.05}
	garden := Point{Lat: -26.8241352382323, Lng: 153.0549933062039}

	d := Distance(user, garden)
	assert.Greater(t, d, 0.5)
	assert.Less(t, d, 1.0)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" -26.82, 153.05 ")
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: -26.82, Lng: 153.05}, p)

	_, err = ParsePoint("-26.82")
	assert.Error(t, err)

	_, err = ParsePoint("north,153")
	assert.Error(t, err)

	_, err = ParsePoint("-26.82,east")
	assert.Error(t, err)
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "-26.82,153.05", Point{Lat: -26.82, Lng: 153.05}.String())
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	b, ok := BoundsOf([]Garden{
		{Lat: -27, Lng: 153},
		{Lat: -26, Lng: 152},
		{Lat: -28, Lng: 154},
	})
	require.True(t, ok)
	assert.Equal(t, Point{Lat: -28, Lng: 152}, b.Min)
	assert.Equal(t, Point{Lat: -26, Lng: 154}, b.Max)
}
