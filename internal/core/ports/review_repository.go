package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
// The underlying store enforces the one-review-per-customer-business rule
// with a unique index, so Add can fail with review.ErrDuplicateReview even
// when a prior Exists check passed.
type ReviewRepository interface {
	// Add persists a new review aggregate to storage.
	// Returns review.ErrDuplicateReview if the customer already reviewed
	// this business.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review aggregate.
	Update(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such review exists.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetByBusiness retrieves all reviews left for the given business owner,
	// newest first.
	GetByBusiness(ctx context.Context, businessID kernel.UUID) ([]*review.Review, error)

	// Exists reports whether the customer has already reviewed the business.
	Exists(ctx context.Context, customerID, businessID kernel.UUID) (bool, error)
}
