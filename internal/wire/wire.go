// Package wire builds the adapters and the session catalog shared by the
// terminal UI, the CLI and the MCP server.
package wire

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"verge/internal/adapters/author"
	"verge/internal/adapters/browser"
	"verge/internal/adapters/dataset"
	"verge/internal/adapters/geolocation"
	"verge/internal/adapters/sqlite"
	"verge/internal/application"
	"verge/internal/config"
	"verge/internal/ports"
)

// LookupDisabled as the geolocation URL turns the IP lookup off
const LookupDisabled = "off"

// Session holds everything a front end needs for one run
type Session struct {
	Config  *config.Config
	Catalog *application.Catalog
	Locator ports.Locator
	Authors ports.AuthorResolver
	Opener  ports.MapOpener

	close func() error
}

// Close releases the data source
func (s *Session) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// IsIndexPath reports whether path names a sqlite catalog rather than JSON
func IsIndexPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenSource returns the garden source for path: a sqlite catalog for .db
// files, a JSON dataset otherwise, the bundled sample when path is empty.
// The returned func closes the source.
func OpenSource(path string) (ports.GardenSource, func() error, error) {
	noop := func() error { return nil }

	switch {
	case path == "":
		return dataset.NewSampleSource(), noop, nil
	case IsIndexPath(path):
		idx := sqlite.NewIndex()
		if err := idx.Open(path); err != nil {
			return nil, nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
		}
		return idx, idx.Close, nil
	default:
		return dataset.NewFileSource(path), noop, nil
	}
}

// NewLocator builds the locator from the configured fixed position and
// lookup URL
func NewLocator(cfg *config.Config, logger zerolog.Logger) ports.Locator {
	if cfg.GeolocationURL == LookupDisabled {
		return geolocation.New(cfg.Location, nil)
	}
	return geolocation.New(cfg.Location, geolocation.NewIPLookup(cfg.GeolocationURL, logger))
}

// NewSession loads the catalog from cfg.DataPath and builds the adapters
func NewSession(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Session, error) {
	src, closeSrc, err := OpenSource(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	catalog, err := application.LoadCatalog(ctx, src, logger)
	if err != nil {
		_ = closeSrc()
		return nil, err
	}

	return &Session{
		Config:  cfg,
		Catalog: catalog,
		Locator: NewLocator(cfg, logger),
		Authors: author.NewRandomPool(),
		Opener:  browser.NewOpener(browser.DefaultMapBase, browser.DefaultZoom),
		close:   closeSrc,
	}, nil
}
