package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"verge/internal/application"
	"verge/internal/application/commands"
	"verge/internal/ports"
)

// RegisterWriteTools adds the session-only garden tools to the MCP server.
// Nothing they change outlives the server process.
func RegisterWriteTools(s *server.MCPServer, catalog *application.Catalog, authors ports.AuthorResolver) {
	s.AddTool(addCommentTool(), addCommentHandler(catalog, authors))
	s.AddTool(lodgeReportTool(), lodgeReportHandler(catalog))
}

// --- add_comment ---

func addCommentTool() mcp.Tool {
	return mcp.NewTool("add_comment",
		mcp.WithDescription("Add an observation to a garden's notes. It appears first in the comment list. Blank text is ignored."),
		mcp.WithString("id",
			mcp.Description("Garden ID"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Comment text about planting, weeding, or observations"),
			mcp.Required(),
		),
	)
}

func addCommentHandler(catalog *application.Catalog, authors ports.AuthorResolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddCommentCommand(catalog, authors, req.GetString("id", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- lodge_report ---

func lodgeReportTool() mcp.Tool {
	return mcp.NewTool("lodge_report",
		mcp.WithDescription("Lodge a maintenance report for a garden. Reports are kept for this session only."),
		mcp.WithString("id",
			mcp.Description("Garden ID"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("The maintenance issue or work completed"),
			mcp.Required(),
		),
	)
}

func lodgeReportHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewLodgeReportCommand(catalog, req.GetString("id", ""), req.GetString("description", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
