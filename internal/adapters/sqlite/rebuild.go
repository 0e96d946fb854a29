package sqlite

import (
	"context"
	"fmt"
	"time"

	"verge/internal/domain"
)

// Rebuild replaces the stored catalog with gardens in a single transaction.
// Invalid gardens and repeated IDs are skipped and counted.
func (idx *Index) Rebuild(ctx context.Context, gardens []domain.Garden) (*domain.ImportStats, error) {
	start := time.Now()
	stats := &domain.ImportStats{}

	sqlTx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin rebuild: %w", err)
	}
	tx := &indexTx{ctx: ctx, tx: sqlTx}
	defer tx.Rollback()

	// Clear existing data
	for _, table := range []string{"gardens", "plants", "comments"} {
		if _, err := sqlTx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(gardens))
	for i := range gardens {
		g := &gardens[i]
		if g.Validate() != nil || seen[g.ID] {
			stats.RecordsSkipped++
			continue
		}
		seen[g.ID] = true

		if err := tx.InsertGarden(stats.GardensAdded, g); err != nil {
			return nil, fmt.Errorf("failed to store garden %s: %w", g.ID, err)
		}
		stats.GardensAdded++

		for pos := range g.Plants {
			if err := tx.InsertPlant(g.ID, pos, &g.Plants[pos]); err != nil {
				return nil, fmt.Errorf("failed to store plant for %s: %w", g.ID, err)
			}
			stats.PlantsAdded++
		}
		for pos := range g.Comments {
			if err := tx.InsertComment(g.ID, pos, &g.Comments[pos]); err != nil {
				return nil, fmt.Errorf("failed to store comment for %s: %w", g.ID, err)
			}
			stats.CommentsAdded++
		}
	}

	hash, err := hashGardens(gardens)
	if err != nil {
		return nil, err
	}
	if _, err := sqlTx.ExecContext(ctx, `
		INSERT OR REPLACE INTO meta (key, value) VALUES ('source_hash', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_build_time', ?);
	`, hash, time.Now().Unix()); err != nil {
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rebuild: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
