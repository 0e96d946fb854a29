package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// Point is a position in decimal degrees
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func (p Point) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// InRange reports whether p is a plausible latitude/longitude pair
func (p Point) InRange() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// ParsePoint parses "lat,lng". Ranges are not checked.
func ParsePoint(s string) (Point, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid point %q: expected lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Distance returns the great-circle distance between a and b in kilometres
// using the Haversine formula. Inputs are not range checked.
func Distance(a, b Point) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// DefaultMapCenter is used when there is nothing to fit the map to (Brisbane)
var DefaultMapCenter = Point{Lat: -27.4698, Lng: 153.0251}

// Bounds is a lat/lng bounding box
type Bounds struct {
	Min Point
	Max Point
}

// BoundsOf returns the box enclosing every garden, false if there are none
func BoundsOf(gardens []Garden) (Bounds, bool) {
	if len(gardens) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: gardens[0].Position(), Max: gardens[0].Position()}
	for _, g := range gardens[1:] {
		b.Min.Lat = min(b.Min.Lat, g.Lat)
		b.Min.Lng = min(b.Min.Lng, g.Lng)
		b.Max.Lat = max(b.Max.Lat, g.Lat)
		b.Max.Lng = max(b.Max.Lng, g.Lng)
	}
	return b, true
}
