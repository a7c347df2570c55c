package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
	"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
)

// GetPlatformStatsQuery retrieves marketplace-wide base information: review
// count, platform-wide average rating, number of businesses with offers and
// the offer count. Always derived on read, never cached.
//
// Example:
//
//	query := NewGetPlatformStatsQuery()
//	handler := NewGetPlatformStatsQueryHandler(db)
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get base info: %w", err)
//	}
//	fmt.Printf("%d reviews, avg %.1f\n", info.ReviewCount, info.AverageRating)
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates a query for platform base information.
// This is a parameterless query.
func NewGetPlatformStatsQuery() GetPlatformStatsQuery {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlatformStatsQueryIsNotConstructed if validation fails.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// GetPlatformStatsQueryResponse is the marketplace-wide read model.
// AverageRating is rounded to one decimal place; 0.0 without any reviews.
type GetPlatformStatsQueryResponse struct {
	ReviewCount   int
	AverageRating float64
	BusinessCount int
	OfferCount    int
}
