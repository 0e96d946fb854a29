package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"verge/internal/application"
	"verge/internal/domain"
)

// ReportLodgedMessage confirms a submitted maintenance report
const ReportLodgedMessage = "Maintenance report successfully lodged!"

// LodgeReportResult contains the result of lodging a report
type LodgeReportResult struct {
	Report  domain.MaintenanceReport
	Message string
}

// LodgeReportCommand records a mock maintenance report for the session.
// Nothing is sent anywhere.
type LodgeReportCommand struct {
	catalog     *application.Catalog
	now         func() time.Time
	GardenID    string
	Description string
}

// NewLodgeReportCommand creates a new LodgeReportCommand
func NewLodgeReportCommand(catalog *application.Catalog, gardenID, description string) *LodgeReportCommand {
	return &LodgeReportCommand{
		catalog:     catalog,
		now:         time.Now,
		GardenID:    gardenID,
		Description: description,
	}
}

// Validate checks that the report names a garden and describes the issue
func (c *LodgeReportCommand) Validate() error {
	if err := application.ValidateRequired("gardenID", c.GardenID); err != nil {
		return err
	}
	return application.ValidateRequired("description", c.Description)
}

// Execute runs the lodge report command
func (c *LodgeReportCommand) Execute(ctx context.Context) (*LodgeReportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report := domain.MaintenanceReport{
		GardenID:    c.GardenID,
		Description: strings.TrimSpace(c.Description),
		LodgedAt:    c.now(),
	}
	if err := c.catalog.AddReport(report); err != nil {
		return nil, fmt.Errorf("failed to lodge report: %w", err)
	}

	return &LodgeReportResult{
		Report:  report,
		Message: ReportLodgedMessage,
	}, nil
}
