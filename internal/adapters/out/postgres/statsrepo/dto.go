// Package statsrepo maintains the per-business stats cache table.
// Rows are recomputed from the orders and reviews tables, inside the writing
// transaction on the command path and in bulk by the reconciliation job.
package statsrepo

import (
	"time"

	"github.com/google/uuid"
)

// BusinessStatsDTO represents one cached stats row.
type BusinessStatsDTO struct {
	BusinessID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	PendingCount    int
	InProgressCount int
	CompletedCount  int
	ReviewCount     int
	AverageRating   float64 `gorm:"type:numeric(3,1)"`
	RecomputedAt    time.Time
}

// TableName specifies the database table name for cached business stats.
func (BusinessStatsDTO) TableName() string {
	return "business_stats"
}
