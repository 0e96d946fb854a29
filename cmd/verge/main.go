package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"verge/internal/adapters/tui"
	"verge/internal/config"
	"verge/internal/logging"
	"verge/internal/wire"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	dataFlag := flag.String("data", "", "garden dataset (.json) or catalog (.db); bundled sample when empty")
	flag.Parse()

	if err := run(*configFlag, *dataFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dataPath string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	// stdout belongs to the UI, so logs go to a file
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}
	logger, closer, err := logging.NewFile(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := wire.NewSession(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	app := tui.NewApp(tui.Deps{
		Catalog:         session.Catalog,
		Locator:         session.Locator,
		Authors:         session.Authors,
		Opener:          session.Opener,
		Logger:          logger,
		DefaultRadiusKm: cfg.DefaultRadiusKm,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
