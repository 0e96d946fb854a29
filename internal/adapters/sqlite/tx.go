package sqlite

import (
	"context"
	"database/sql"

	"verge/internal/domain"
)

// indexTx writes one rebuild's rows
type indexTx struct {
	ctx context.Context
	tx  *sql.Tx
}

// InsertGarden stores a garden at the given catalog position
func (t *indexTx) InsertGarden(position int, g *domain.Garden) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO gardens (id, position, name, location, type, image_url, health,
			soil_moisture, ph, water_depth, flood_risk, lat, lng)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, position, g.Name, g.Location, string(g.Type), nullString(g.ImageURL), string(g.Health),
		g.SoilMoisture, g.PH, g.WaterDepth, string(g.FloodRisk), g.Lat, g.Lng)
	return err
}

// InsertPlant adds a plant at the given position
func (t *indexTx) InsertPlant(gardenID string, position int, p *domain.Plant) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO plants (garden_id, position, name, scientific_name, status)
		VALUES (?, ?, ?, ?, ?)
	`, gardenID, position, p.Name, p.ScientificName, string(p.Status))
	return err
}

// InsertComment adds a comment at the given position (0 is newest)
func (t *indexTx) InsertComment(gardenID string, position int, c *domain.Comment) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO comments (garden_id, position, id, author, date, content, type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gardenID, position, c.ID, c.Author, c.Date, c.Content, string(c.Type))
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}

// nullString returns nil for empty strings (for nullable columns)
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
