package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"verge/internal/config"
	"verge/internal/domain"
	"verge/internal/logging"
	"verge/internal/wire"
)

var (
	configPath string
	dataPath   string
	logLevel   string
	atPoint    string

	cfg     *config.Config
	logger  zerolog.Logger
	session *wire.Session
)

// commands that work without loading the garden catalog
var noSession = map[string]bool{
	"help":       true,
	"completion": true,
	"distance":   true,
	"radii":      true,
	"validate":   true,
	"index":      true,
}

var rootCmd = &cobra.Command{
	Use:   "verge-cli",
	Short: "CLI for the community verge garden catalog",
	Long: `verge-cli browses a catalog of community verge gardens and bioswales.

It lists and filters gardens by type, text and distance from you, shows a
garden's condition, and builds sqlite catalogs from JSON datasets.

The catalog is read from --data (a .json dataset or a .db catalog), from
VERGE_DATA, or from the bundled five-garden sample.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
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
		if atPoint != "" {
			p, err := domain.ParsePoint(atPoint)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			cfg.Location = &p
		}
		switch {
		case logLevel != "":
			cfg.LogLevel = logLevel
		case cfg.LogLevel == config.DefaultLogLevel:
			// keep command output clean unless asked
			cfg.LogLevel = "warn"
		}

		logger, err = logging.New(cfg.LogLevel, logging.FormatConsole, os.Stderr)
		if err != nil {
			return err
		}

		if noSession[cmd.Name()] {
			return nil
		}
		session, err = wire.NewSession(context.Background(), cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if session == nil {
			return nil
		}
		return session.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "garden dataset (.json) or catalog (.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/verge/config.yml)")
	rootCmd.PersistentFlags().StringVar(&atPoint, "at", "", "your position as lat,lng (overrides the configured location)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// GetSession returns the loaded session
func GetSession() *wire.Session {
	return session
}
