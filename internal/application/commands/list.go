package commands

import (
	"context"

	"verge/internal/application"
	"verge/internal/domain"
)

// ListGardensCommand lists every garden in dataset order
type ListGardensCommand struct {
	catalog *application.Catalog
}

// NewListGardensCommand creates a new ListGardensCommand
func NewListGardensCommand(catalog *application.Catalog) *ListGardensCommand {
	return &ListGardensCommand{catalog: catalog}
}

// Execute runs the list gardens command
func (c *ListGardensCommand) Execute(ctx context.Context) ([]domain.Garden, error) {
	return c.catalog.All(), nil
}

// GetGardenCommand fetches a single garden for the detail view
type GetGardenCommand struct {
	catalog  *application.Catalog
	GardenID string
}

// NewGetGardenCommand creates a new GetGardenCommand
func NewGetGardenCommand(catalog *application.Catalog, gardenID string) *GetGardenCommand {
	return &GetGardenCommand{
		catalog:  catalog,
		GardenID: gardenID,
	}
}

// Validate checks that a garden ID was given
func (c *GetGardenCommand) Validate() error {
	return application.ValidateRequired("gardenID", c.GardenID)
}

// Execute runs the get garden command
func (c *GetGardenCommand) Execute(ctx context.Context) (*domain.Garden, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g, err := c.catalog.Get(c.GardenID)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
