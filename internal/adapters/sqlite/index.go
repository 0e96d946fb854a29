package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"verge/internal/domain"
	"verge/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.CatalogIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open opens (creating if needed) the catalog database at path
func (idx *Index) Open(path string) error {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	idx.dbPath = path

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS gardens (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			type TEXT NOT NULL,
			image_url TEXT,
			health TEXT NOT NULL,
			soil_moisture REAL NOT NULL,
			ph REAL NOT NULL,
			water_depth REAL NOT NULL,
			flood_risk TEXT NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS plants (
			garden_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			scientific_name TEXT NOT NULL,
			status TEXT NOT NULL,
			PRIMARY KEY (garden_id, position)
		);
		CREATE TABLE IF NOT EXISTS comments (
			garden_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			author TEXT NOT NULL,
			date TEXT NOT NULL,
			content TEXT NOT NULL,
			type TEXT NOT NULL,
			PRIMARY KEY (garden_id, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_gardens_type ON gardens(type);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file path
func (idx *Index) Path() string {
	return idx.dbPath
}

// UpToDate reports whether the stored catalog was built from exactly these
// gardens
func (idx *Index) UpToDate(gardens []domain.Garden) (bool, error) {
	var stored string
	err := idx.db.QueryRow("SELECT value FROM meta WHERE key = 'source_hash'").Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read source hash: %w", err)
	}

	hash, err := hashGardens(gardens)
	if err != nil {
		return false, err
	}
	return stored == hash, nil
}

// hashGardens returns a short hash of the gardens' JSON encoding
func hashGardens(gardens []domain.Garden) (string, error) {
	data, err := json.Marshal(gardens)
	if err != nil {
		return "", fmt.Errorf("failed to encode gardens: %w", err)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:8]), nil // First 8 bytes = 16 hex chars
}

// LoadAll implements ports.GardenSource. Gardens come back in the order they
// were stored, with plants and comments in their original order.
func (idx *Index) LoadAll(ctx context.Context) ([]domain.Garden, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT id, name, location, type, image_url, health, soil_moisture, ph,
			water_depth, flood_risk, lat, lng
		FROM gardens ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gardens: %w", err)
	}
	defer rows.Close()

	var gardens []domain.Garden
	byID := make(map[string]int)
	for rows.Next() {
		var g domain.Garden
		var imageURL sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &g.Location, &g.Type, &imageURL, &g.Health,
			&g.SoilMoisture, &g.PH, &g.WaterDepth, &g.FloodRisk, &g.Lat, &g.Lng); err != nil {
			return nil, err
		}
		g.ImageURL = imageURL.String
		g.Normalize()
		byID[g.ID] = len(gardens)
		gardens = append(gardens, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := idx.loadPlants(ctx, gardens, byID); err != nil {
		return nil, err
	}
	if err := idx.loadComments(ctx, gardens, byID); err != nil {
		return nil, err
	}

	return gardens, nil
}

func (idx *Index) loadPlants(ctx context.Context, gardens []domain.Garden, byID map[string]int) error {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT garden_id, name, scientific_name, status
		FROM plants ORDER BY garden_id, position
	`)
	if err != nil {
		return fmt.Errorf("failed to query plants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gardenID string
		var p domain.Plant
		if err := rows.Scan(&gardenID, &p.Name, &p.ScientificName, &p.Status); err != nil {
			return err
		}
		if i, ok := byID[gardenID]; ok {
			gardens[i].Plants = append(gardens[i].Plants, p)
		}
	}
	return rows.Err()
}

func (idx *Index) loadComments(ctx context.Context, gardens []domain.Garden, byID map[string]int) error {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT garden_id, id, author, date, content, type
		FROM comments ORDER BY garden_id, position
	`)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gardenID string
		var c domain.Comment
		if err := rows.Scan(&gardenID, &c.ID, &c.Author, &c.Date, &c.Content, &c.Type); err != nil {
			return err
		}
		if i, ok := byID[gardenID]; ok {
			gardens[i].Comments = append(gardens[i].Comments, c)
		}
	}
	return rows.Err()
}
