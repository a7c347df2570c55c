package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetBusinessStatsQueryHandler reads the per-business stats cache.
// A business that never triggered a recompute has no cache row yet; the
// handler then falls back to aggregating the orders and reviews tables
// directly, so reads never report a missing business as an error.
//
// Example:
//
//	handler := NewGetBusinessStatsQueryHandler(db)
//	query, _ := NewGetBusinessStatsQuery(businessID)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get business stats: %v", err)
//	    return err
//	}
type GetBusinessStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessStatsQueryHandler creates a handler for business stats queries.
// Requires a GORM database connection for query execution.
func NewGetBusinessStatsQueryHandler(db *gorm.DB) GetBusinessStatsQueryHandler {
	return GetBusinessStatsQueryHandler{db: db}
}

// Handle executes the stats lookup, preferring the cache table.
func (h GetBusinessStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessStatsQuery,
) (GetBusinessStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBusinessStatsQueryResponse{}, err
	}

	resp := GetBusinessStatsQueryResponse{BusinessID: query.BusinessID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			pending_count,
			in_progress_count,
			completed_count,
			review_count,
			average_rating
		FROM business_stats
		WHERE business_id = ?
	`, query.BusinessID().String()).Row()

	err := row.Scan(
		&resp.PendingCount,
		&resp.InProgressCount,
		&resp.CompletedCount,
		&resp.ReviewCount,
		&resp.AverageRating,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return h.aggregate(ctx, query)
	}
	if err != nil {
		return GetBusinessStatsQueryResponse{}, err
	}

	return resp, nil
}

// aggregate computes the stats straight from the source tables. Matches the
// recompute SQL of the stats repository, so the fallback and the cache agree.
func (h GetBusinessStatsQueryHandler) aggregate(
	ctx context.Context,
	query GetBusinessStatsQuery,
) (GetBusinessStatsQueryResponse, error) {
	resp := GetBusinessStatsQueryResponse{BusinessID: query.BusinessID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'pending'),
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'in_progress'),
			(SELECT COUNT(*) FROM orders WHERE business_id = @business_id AND status = 'completed'),
			(SELECT COUNT(*) FROM reviews WHERE business_id = @business_id),
			(SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0.0) FROM reviews WHERE business_id = @business_id)
	`, sql.Named("business_id", query.BusinessID().String())).Row()

	err := row.Scan(
		&resp.PendingCount,
		&resp.InProgressCount,
		&resp.CompletedCount,
		&resp.ReviewCount,
		&resp.AverageRating,
	)
	if err != nil {
		return GetBusinessStatsQueryResponse{}, err
	}

	return resp, nil
}
