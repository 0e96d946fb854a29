// Package config resolves settings from environment variables and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"verge/internal/domain"
)

// Environment variables
const (
	EnvData     = "VERGE_DATA"
	EnvConfig   = "VERGE_CONFIG"
	EnvLogLevel = "VERGE_LOG_LEVEL"
)

// DefaultLogLevel is used when neither the file nor the environment sets one
const DefaultLogLevel = "info"

// DataPath returns the dataset path from VERGE_DATA. Empty means the bundled
// sample.
func DataPath() string {
	return os.Getenv(EnvData)
}

// DefaultConfigPath returns the config file path from VERGE_CONFIG, falling
// back to ~/.config/verge/config.yml.
func DefaultConfigPath() (string, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	return filepath.Join(dir, "verge", "config.yml"), nil
}

// Config holds the application settings
type Config struct {
	DataPath        string        `yaml:"data_path,omitempty"`
	DefaultRadiusKm float64       `yaml:"default_radius_km,omitempty"`
	LogLevel        string        `yaml:"log_level,omitempty"`
	LogFile         string        `yaml:"log_file,omitempty"`
	Location        *domain.Point `yaml:"location,omitempty"`
	GeolocationURL  string        `yaml:"geolocation_url,omitempty"`
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		DefaultRadiusKm: domain.DefaultRadiusKm,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks the radius choice and the configured location
func (c *Config) Validate() error {
	var errs []error
	if !domain.ValidRadius(c.DefaultRadiusKm) {
		errs = append(errs, fmt.Errorf("default_radius_km must be one of %s, got %v", domain.RadiusChoicesString(), c.DefaultRadiusKm))
	}
	if c.Location != nil && !c.Location.InRange() {
		errs = append(errs, fmt.Errorf("location out of range: %s", c.Location))
	}
	return errors.Join(errs...)
}

// Load reads the configuration from the given path on top of the defaults,
// then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.applyEnv()
	cfg.DataPath = expandHome(cfg.DataPath)
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the default path
func LoadDefault() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	if env := DataPath(); env != "" {
		c.DataPath = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		c.LogLevel = env
	}
	if c.DefaultRadiusKm == 0 {
		c.DefaultRadiusKm = domain.DefaultRadiusKm
	}
}

// DefaultLogFile returns where the terminal UI writes its log
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "verge", "verge.log")
}

func expandHome(path string) string {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
