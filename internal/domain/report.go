package domain

import "time"

// MaintenanceReport is a mock report lodged against a garden. Reports live
// only for the session.
type MaintenanceReport struct {
	GardenID    string
	Description string
	LodgedAt    time.Time
}
