package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetBusinessStatsQueryIsNotConstructed = errors.New(
	"GetBusinessStatsQuery must be created via NewGetBusinessStatsQuery constructor",
)

// GetBusinessStatsQuery retrieves the aggregate stats of one business owner:
// order counts per workflow stage, review count and average rating.
//
// Example:
//
//	query, _ := NewGetBusinessStatsQuery(businessID)
//	handler := NewGetBusinessStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stats: %w", err)
//	}
//	fmt.Printf("%d in progress, avg rating %.1f\n", stats.InProgressCount, stats.AverageRating)
type GetBusinessStatsQuery struct { //nolint:recvcheck //using for validation
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBusinessStatsQuery creates a query for one business owner's stats.
func NewGetBusinessStatsQuery(businessID kernel.UUID) (GetBusinessStatsQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetBusinessStatsQuery{}, err
	}

	return GetBusinessStatsQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBusinessStatsQueryIsNotConstructed if validation fails.
func (q GetBusinessStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessStatsQueryIsNotConstructed)
}

// BusinessID returns the identifier of the business owner.
func (q GetBusinessStatsQuery) BusinessID() kernel.UUID {
	return q.businessID
}

// GetBusinessStatsQueryResponse is the aggregate read model of one business.
// AverageRating is rounded to one decimal place; a business without reviews
// reports 0.0.
type GetBusinessStatsQueryResponse struct {
	BusinessID      kernel.UUID
	PendingCount    int
	InProgressCount int
	CompletedCount  int
	ReviewCount     int
	AverageRating   float64
}
