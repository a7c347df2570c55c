package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// StatsRepository maintains the per-business stats cache table. Command
// handlers call RecomputeBusiness inside the unit of work that performed the
// triggering write, so the cache moves in the same transaction as the data
// it summarizes. RecomputeAll is the periodic reconciliation pass that
// repairs any drift.
//
// Reads go through the query side, which prefers the cache and falls back to
// direct aggregation.
type StatsRepository interface {
	// RecomputeBusiness recalculates and upserts the cached stats row for a
	// single business from the orders and reviews tables.
	RecomputeBusiness(ctx context.Context, businessID kernel.UUID) error

	// RecomputeAll recalculates the cached stats for every business that
	// appears in orders or reviews.
	RecomputeAll(ctx context.Context) error
}
