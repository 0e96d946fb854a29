package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"verge/internal/application"
	"verge/internal/domain"
)

//go:embed sample.json
var sampleData []byte

// Source implements ports.GardenSource over a JSON array of gardens
type Source struct {
	path string
	data []byte
}

// NewFileSource creates a source that reads the JSON file at path
func NewFileSource(path string) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Source{path: path}
}

// NewSampleSource creates a source over the bundled five-garden sample
func NewSampleSource() *Source {
	return &Source{data: sampleData}
}

// Path returns the file path, empty for the bundled sample
func (s *Source) Path() string {
	return s.path
}

// LoadAll reads and decodes every garden. Records that cannot be decoded are
// skipped and reported as joined *application.RecordError values alongside
// the gardens that could be.
func (s *Source) LoadAll(ctx context.Context) ([]domain.Garden, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := s.data
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset: %w", err)
		}
		data = b
	}

	return Decode(data)
}

// Decode parses a JSON array of gardens
func Decode(data []byte) ([]domain.Garden, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	gardens := make([]domain.Garden, 0, len(raw))
	var errs []error

	for i, msg := range raw {
		var rec gardenRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			errs = append(errs, &application.RecordError{Index: i, Err: err})
			continue
		}

		g, err := rec.toGarden()
		if err != nil {
			errs = append(errs, &application.RecordError{Index: i, ID: deref(rec.ID), Err: err})
			continue
		}
		gardens = append(gardens, g)
	}

	return gardens, errors.Join(errs...)
}

// Records use pointer fields so a missing value can be told apart from a
// zero one.
type gardenRecord struct {
	ID           *string         `json:"id"`
	Name         *string         `json:"name"`
	Location     *string         `json:"location"`
	Type         *string         `json:"type"`
	ImageURL     string          `json:"imageUrl"`
	Health       *string         `json:"health"`
	SoilMoisture *float64        `json:"soilMoisture"`
	PH           *float64        `json:"pH"`
	WaterDepth   *float64        `json:"waterDepth"`
	FloodRisk    *string         `json:"floodRisk"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	Plants       []plantRecord   `json:"plants"`
	Comments     []commentRecord `json:"comments"`
}

type plantRecord struct {
	Name           *string `json:"name"`
	ScientificName string  `json:"scientificName"`
	Status         *string `json:"status"`
}

type commentRecord struct {
	ID      *string `json:"id"`
	Author  *string `json:"author"`
	Date    *string `json:"date"`
	Content *string `json:"content"`
	Type    *string `json:"type"`
}

func (r gardenRecord) toGarden() (domain.Garden, error) {
	var missing []string
	need := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}
	need("id", r.ID != nil)
	need("name", r.Name != nil)
	need("location", r.Location != nil)
	need("type", r.Type != nil)
	need("health", r.Health != nil)
	need("soilMoisture", r.SoilMoisture != nil)
	need("pH", r.PH != nil)
	need("waterDepth", r.WaterDepth != nil)
	need("floodRisk", r.FloodRisk != nil)
	need("lat", r.Lat != nil)
	need("lng", r.Lng != nil)

	for i, p := range r.Plants {
		need(fmt.Sprintf("plants[%d].name", i), p.Name != nil)
		need(fmt.Sprintf("plants[%d].status", i), p.Status != nil)
	}
	for i, c := range r.Comments {
		need(fmt.Sprintf("comments[%d].id", i), c.ID != nil)
		need(fmt.Sprintf("comments[%d].author", i), c.Author != nil)
		need(fmt.Sprintf("comments[%d].date", i), c.Date != nil)
		need(fmt.Sprintf("comments[%d].content", i), c.Content != nil)
		need(fmt.Sprintf("comments[%d].type", i), c.Type != nil)
	}

	if len(missing) > 0 {
		return domain.Garden{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	g := domain.Garden{
		ID:           *r.ID,
		Name:         *r.Name,
		Location:     *r.Location,
		Type:         domain.GardenType(*r.Type),
		ImageURL:     r.ImageURL,
		Health:       domain.HealthLevel(*r.Health),
		SoilMoisture: *r.SoilMoisture,
		PH:           *r.PH,
		WaterDepth:   *r.WaterDepth,
		FloodRisk:    domain.FloodRisk(*r.FloodRisk),
		Lat:          *r.Lat,
		Lng:          *r.Lng,
		Plants:       make([]domain.Plant, 0, len(r.Plants)),
		Comments:     make([]domain.Comment, 0, len(r.Comments)),
	}
	for _, p := range r.Plants {
		g.Plants = append(g.Plants, domain.Plant{
			Name:           *p.Name,
			ScientificName: p.ScientificName,
			Status:         domain.PlantStatus(*p.Status),
		})
	}
	for _, c := range r.Comments {
		g.Comments = append(g.Comments, domain.Comment{
			ID:      *c.ID,
			Author:  *c.Author,
			Date:    *c.Date,
			Content: *c.Content,
			Type:    domain.CommentType(*c.Type),
		})
	}

	return g, g.Validate()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
