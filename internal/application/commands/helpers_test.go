package commands

import (
	"context"
	"time"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

func fixtureCatalog() *application.Catalog {
	return application.NewCatalog([]domain.Garden{
		{
			ID: "1", Name: "Mooloolaba Esplanade Verge", Location: "Mooloolaba Esplanade, Mooloolaba QLD",
			Type: domain.TypeVerge, Health: domain.HealthGood, FloodRisk: domain.FloodLow,
			Lat: -26.8241352382323, Lng: 153.0549933062039,
			Comments: []domain.Comment{
				{ID: "c1", Author: "Grace L.", Date: "3/2/2025", Content: "Mulched the front bed", Type: domain.CommentMaintenance},
				{ID: "c2", Author: "Noah C.", Date: "1/2/2025", Content: "Bees everywhere", Type: domain.CommentObservation},
			},
		},
		{
			ID: "2", Name: "Nambour Creek Bioswale", Location: "Currie Street, Nambour QLD",
			Type: domain.TypeBioswale, Health: domain.HealthFair, FloodRisk: domain.FloodHigh,
			Lat: 45, Lng: 60,
		},
		{
			ID: "3", Name: "Maroochydore Native Verge", Location: "Duporth Avenue, Maroochydore QLD",
			Type: domain.TypeVerge, Health: domain.HealthPoor, FloodRisk: domain.FloodMedium,
			Lat: 70, Lng: 25,
		},
	})
}

type fixedAuthor string

func (a fixedAuthor) Resolve() string { return string(a) }

type stubLocator struct {
	point domain.Point
	err   error
	calls int
	opts  ports.LocateOptions
}

func (s *stubLocator) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	s.calls++
	s.opts = opts
	return s.point, s.err
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
