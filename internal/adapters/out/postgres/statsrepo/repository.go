package statsrepo

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStatsRepository implements StatsRepository using GORM.
// All recomputation happens inside the database: the aggregation and the
// upsert are a single statement, so the cache row can never hold numbers
// from two different points in time.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM stats repository.
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// RecomputeBusiness recalculates and upserts the cached stats row for one
// business. The average rating is rounded to one decimal place, 0.0 without
// any reviews.
func (r *GormStatsRepository) RecomputeBusiness(ctx context.Context, businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO business_stats (
			business_id,
			pending_count,
			in_progress_count,
			completed_count,
			review_count,
			average_rating,
			recomputed_at
		)
		VALUES (
			@business_id,
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'pending'),
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'in_progress'),
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'completed'),
			(SELECT COUNT(*) FROM reviews WHERE business_id = @business_id),
			(SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0.0) FROM reviews WHERE business_id = @business_id),
			NOW()
		)
		ON CONFLICT (business_id) DO UPDATE SET
			pending_count     = EXCLUDED.pending_count,
			in_progress_count = EXCLUDED.in_progress_count,
			completed_count   = EXCLUDED.completed_count,
			review_count      = EXCLUDED.review_count,
			average_rating    = EXCLUDED.average_rating,
			recomputed_at     = EXCLUDED.recomputed_at
	`, sql.Named("business_id", businessID.Bytes())).Error
}

// RecomputeAll recalculates the cached stats for every business present in
// orders or reviews and drops cache rows whose business no longer appears in
// either table. The reconciliation job runs this to repair any drift.
func (r *GormStatsRepository) RecomputeAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO business_stats (
			business_id,
			pending_count,
			in_progress_count,
			completed_count,
			review_count,
			average_rating,
			recomputed_at
		)
		SELECT
			b.business_id,
			COALESCE(o.pending_count, 0),
			COALESCE(o.in_progress_count, 0),
			COALESCE(o.completed_count, 0),
			COALESCE(r.review_count, 0),
			COALESCE(r.average_rating, 0.0),
			NOW()
		FROM (
			SELECT business_id FROM orders
			UNION
			SELECT business_id FROM reviews
		) b
		LEFT JOIN (
			SELECT
				business_id,
				COUNT(*) FILTER (WHERE status = 'pending')     AS pending_count,
				COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress_count,
				COUNT(*) FILTER (WHERE status = 'completed')   AS completed_count
			FROM orders
			GROUP BY business_id
		) o ON o.business_id = b.business_id
		LEFT JOIN (
			SELECT
				business_id,
				COUNT(*)                       AS review_count,
				ROUND(AVG(rating)::numeric, 1) AS average_rating
			FROM reviews
			GROUP BY business_id
		) r ON r.business_id = b.business_id
		ON CONFLICT (business_id) DO UPDATE SET
			pending_count     = EXCLUDED.pending_count,
			in_progress_count = EXCLUDED.in_progress_count,
			completed_count   = EXCLUDED.completed_count,
			review_count      = EXCLUDED.review_count,
			average_rating    = EXCLUDED.average_rating,
			recomputed_at     = EXCLUDED.recomputed_at
	`).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		DELETE FROM business_stats
		WHERE business_id NOT IN (
			SELECT business_id FROM orders
			UNION
			SELECT business_id FROM reviews
		)
	`).Error
}
