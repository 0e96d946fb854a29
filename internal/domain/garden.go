package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Garden represents a verge garden or bioswale site
type Garden struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Type         GardenType  `json:"type"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	Health       HealthLevel `json:"health"`
	SoilMoisture float64     `json:"soilMoisture"` // percent
	PH           float64     `json:"pH"`
	WaterDepth   float64     `json:"waterDepth"`
	FloodRisk    FloodRisk   `json:"floodRisk"`
	Lat          float64     `json:"lat"`
	Lng          float64     `json:"lng"`
	Plants       []Plant     `json:"plants"`
	Comments     []Comment   `json:"comments"` // newest first
}

// Plant is a planting recorded at a garden
type Plant struct {
	Name           string      `json:"name"`
	ScientificName string      `json:"scientificName"`
	Status         PlantStatus `json:"status"`
}

// Comment is a note left on a garden
type Comment struct {
	ID      string      `json:"id"`
	Author  string      `json:"author"`
	Date    string      `json:"date"`
	Content string      `json:"content"`
	Type    CommentType `json:"type"`
}

// Position returns the garden's coordinates
func (g Garden) Position() Point {
	return Point{Lat: g.Lat, Lng: g.Lng}
}

// Validate checks the garden's enumerations and required fields.
// All problems are reported together.
func (g Garden) Validate() error {
	var errs []error

	if strings.TrimSpace(g.ID) == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !g.Type.Valid() {
		errs = append(errs, fmt.Errorf("%w: garden type %q", ErrInvalidValue, g.Type))
	}
	if !g.Health.Valid() {
		errs = append(errs, fmt.Errorf("%w: health %q", ErrInvalidValue, g.Health))
	}
	if !g.FloodRisk.Valid() {
		errs = append(errs, fmt.Errorf("%w: flood risk %q", ErrInvalidValue, g.FloodRisk))
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"soilMoisture", g.SoilMoisture},
		{"pH", g.PH},
		{"waterDepth", g.WaterDepth},
		{"lat", g.Lat},
		{"lng", g.Lng},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			errs = append(errs, fmt.Errorf("%s is not a finite number", v.name))
		}
	}
	for i, p := range g.Plants {
		if !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("plants[%d]: %w: plant status %q", i, ErrInvalidValue, p.Status))
		}
	}
	for i, c := range g.Comments {
		if !c.Type.Valid() {
			errs = append(errs, fmt.Errorf("comments[%d]: %w: comment type %q", i, ErrInvalidValue, c.Type))
		}
	}

	return errors.Join(errs...)
}

// Normalize replaces nil collections with empty ones
func (g *Garden) Normalize() {
	if g.Plants == nil {
		g.Plants = []Plant{}
	}
	if g.Comments == nil {
		g.Comments = []Comment{}
	}
}

// Clone returns a copy that shares no slices with g
func (g Garden) Clone() Garden {
	c := g
	c.Plants = append([]Plant{}, g.Plants...)
	c.Comments = append([]Comment{}, g.Comments...)
	return c
}

// PrependComment adds c as the newest comment
func (g *Garden) PrependComment(c Comment) {
	comments := make([]Comment, 0, len(g.Comments)+1)
	comments = append(comments, c)
	g.Comments = append(comments, g.Comments...)
}

