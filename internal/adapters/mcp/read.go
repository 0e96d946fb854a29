package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"verge/internal/application"
	"verge/internal/application/commands"
	"verge/internal/domain"
	"verge/internal/ports"
)

// RegisterReadTools adds all read-only garden tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, catalog *application.Catalog, locator ports.Locator) {
	s.AddTool(searchTool(), searchHandler(catalog, locator))
	s.AddTool(getGardenTool(), getGardenHandler(catalog))
	s.AddTool(distanceTool(), distanceHandler())
}

// --- search_gardens ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_gardens",
		mcp.WithDescription("Find verge gardens and bioswales. All filters combine: type, free-text search over name/location/type keywords, and proximity to a position."),
		mcp.WithString("type",
			mcp.Description("Garden type: all, VG (verge garden) or BS (bioswale). Defaults to all."),
		),
		mcp.WithString("query",
			mcp.Description("Search text, e.g. a suburb, street or 'swale'"),
		),
		mcp.WithString("near",
			mcp.Description("Position as lat,lng to search around (e.g. -26.82,153.05)"),
		),
		mcp.WithBoolean("near_me",
			mcp.Description("Search around the current location of this machine instead of 'near'"),
		),
		mcp.WithNumber("radius_km",
			mcp.Description("Search radius in km when a position is given: 1, 2, 5, 10 or 20. Defaults to 5."),
		),
	)
}

func searchHandler(catalog *application.Catalog, locator ports.Locator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		typeFilter, err := domain.ParseTypeFilter(req.GetString("type", ""))
		if err != nil {
			return toolError(err)
		}

		filter := domain.Filter{
			Type:     typeFilter,
			Query:    req.GetString("query", ""),
			RadiusKm: req.GetFloat("radius_km", domain.DefaultRadiusKm),
		}

		switch {
		case req.GetBool("near_me", false):
			result, err := commands.NewLocateCommand(locator).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			filter.Near = &result.Position
		case req.GetString("near", "") != "":
			p, err := domain.ParsePoint(req.GetString("near", ""))
			if err != nil {
				return toolError(err)
			}
			filter.Near = &p
		}

		result, err := commands.NewFilterGardensCommand(catalog, filter).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Gardens) == 0 {
			return mcp.NewToolResultText("No gardens found."), nil
		}

		var sb strings.Builder
		if result.Summary != "" {
			sb.WriteString(result.Summary)
			sb.WriteString("\n\n")
		}
		for _, g := range result.Gardens {
			sb.WriteString(formatGardenLine(g, filter.Near))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_garden ---

func getGardenTool() mcp.Tool {
	return mcp.NewTool("get_garden",
		mcp.WithDescription("Show a garden's details: health, soil and water metrics, flood risk, plants and comments (newest first)."),
		mcp.WithString("id",
			mcp.Description("Garden ID"),
			mcp.Required(),
		),
	)
}

func getGardenHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := commands.NewGetGardenCommand(catalog, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatGardenDetail(*g, catalog.Reports(g.ID))), nil
	}
}

// --- distance ---

func distanceTool() mcp.Tool {
	return mcp.NewTool("distance",
		mcp.WithDescription("Great-circle distance in km between two lat,lng positions."),
		mcp.WithString("from",
			mcp.Description("First position as lat,lng"),
			mcp.Required(),
		),
		mcp.WithString("to",
			mcp.Description("Second position as lat,lng"),
			mcp.Required(),
		),
	)
}

func distanceHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := domain.ParsePoint(req.GetString("from", ""))
		if err != nil {
			return toolError(err)
		}
		to, err := domain.ParsePoint(req.GetString("to", ""))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%.3f km", domain.Distance(from, to))), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatGardenLine(g domain.Garden, near *domain.Point) string {
	line := fmt.Sprintf("%s  %s  [%s]  %s  health:%s", g.ID, g.Name, g.Type, g.Location, g.Health)
	if g.FloodRisk == domain.FloodHigh {
		line += "  HIGH FLOOD RISK"
	}
	if near != nil {
		line += fmt.Sprintf("  (%.2f km)", domain.Distance(*near, g.Position()))
	}
	return line
}

func formatGardenDetail(g domain.Garden, reports []domain.MaintenanceReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s)\n", g.Name, g.Type.Label())
	fmt.Fprintf(&sb, "ID: %s\nLocation: %s\nPosition: %s\n", g.ID, g.Location, g.Position())
	fmt.Fprintf(&sb, "Health: %s (%d%%)\n", g.Health, g.HealthScore())
	fmt.Fprintf(&sb, "Soil moisture: %g%%  pH: %g  Water depth: %gcm (%.0f%% capacity)\n",
		g.SoilMoisture, g.PH, g.WaterDepth, g.WaterCapacity())

	headline, note := g.FloodBanner()
	fmt.Fprintf(&sb, "Flood risk: %s. %s", g.FloodRisk, headline)
	if note != "" {
		fmt.Fprintf(&sb, ". %s", note)
	}
	sb.WriteString("\n")

	if len(g.Plants) > 0 {
		sb.WriteString("\nPlants:\n")
		for _, p := range g.Plants {
			fmt.Fprintf(&sb, "- %s (%s): %s\n", p.Name, p.ScientificName, p.Status.Label())
		}
	}

	if len(g.Comments) > 0 {
		sb.WriteString("\nComments:\n")
		for _, c := range g.Comments {
			fmt.Fprintf(&sb, "- [%s] %s, %s: %s\n", c.Type, c.Author, c.Date, c.Content)
		}
	}

	if len(reports) > 0 {
		fmt.Fprintf(&sb, "\nMaintenance reports this session: %d\n", len(reports))
	}

	return sb.String()
}
