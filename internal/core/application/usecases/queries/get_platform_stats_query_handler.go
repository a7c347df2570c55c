package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler derives marketplace-wide base information on
// every read. The numbers change rarely enough that a cache is not worth the
// drift it could introduce here.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for platform stats queries.
// Requires a GORM database connection for query execution.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle executes the platform-wide aggregation.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (GetPlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	var resp GetPlatformStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0.0) FROM reviews),
			(SELECT COUNT(DISTINCT business_id) FROM packages),
			(SELECT COUNT(DISTINCT offer_id) FROM packages)
	`).Row()

	err := row.Scan(
		&resp.ReviewCount,
		&resp.AverageRating,
		&resp.BusinessCount,
		&resp.OfferCount,
	)
	if err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	return resp, nil
}
