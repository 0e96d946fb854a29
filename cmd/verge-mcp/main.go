package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "verge/internal/adapters/mcp"
	"verge/internal/config"
	"verge/internal/logging"
	"verge/internal/wire"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "garden dataset (.json) or catalog (.db)")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("verge-mcp: %v", err)
	}
	if *dataFlag != "" {
		cfg.DataPath = *dataFlag
	}

	// stdout carries the protocol
	logger, err := logging.New(cfg.LogLevel, logging.FormatJSON, os.Stderr)
	if err != nil {
		log.Fatalf("verge-mcp: %v", err)
	}

	session, err := wire.NewSession(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("verge-mcp: %v", err)
	}
	defer session.Close()

	mcpServer := server.NewMCPServer(
		"verge-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, session.Catalog, session.Locator)
	mcpadapter.RegisterWriteTools(mcpServer, session.Catalog, session.Authors)

	logger.Info().Int("gardens", session.Catalog.Len()).Msg("serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
