// Package ports defines repository and unit-of-work interfaces for the
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders carry their package snapshot inline; the repository never needs to
// consult the offer source to restore one.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves the orders placed by the given customer,
	// newest first. A statusFilter of order.StatusUnknown returns orders
	// in every status.
	GetByCustomer(ctx context.Context, customerID kernel.UUID, statusFilter order.Status) ([]*order.Order, error)

	// GetByBusiness retrieves the orders addressed to the given business
	// owner, newest first. A statusFilter of order.StatusUnknown returns
	// orders in every status.
	GetByBusiness(ctx context.Context, businessID kernel.UUID, statusFilter order.Status) ([]*order.Order, error)

	// UpdateStatus performs a compare-and-set status update: a single UPDATE
	// guarded by the expected current status. If no row matches (the order is
	// gone or another writer got there first) it returns
	// errs.ConcurrentModificationError.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, target order.Status, updatedAt time.Time) error

	// GetFirstCompleted retrieves the most recently completed order linking
	// the given customer to the given business. Used as the review
	// eligibility check. Returns errs.ObjectNotFoundError if no completed
	// order links the pair.
	GetFirstCompleted(ctx context.Context, customerID, businessID kernel.UUID) (*order.Order, error)
}
