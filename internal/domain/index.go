package domain

import "time"

// ImportStats holds statistics from building a catalog index
type ImportStats struct {
	GardensAdded   int
	PlantsAdded    int
	CommentsAdded  int
	RecordsSkipped int
	Duration       time.Duration
}
