package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrSelfPurchase is returned when a customer attempts to order their own offer.
	ErrSelfPurchase = errors.New("customer cannot purchase their own offer")
)

// Order represents a placed purchase in the marketplace. It is the aggregate
// root that owns the frozen package snapshot and manages the order lifecycle
// from placement through completion or cancellation.
//
// Order follows these invariants:
//   - Must have valid unique, customer, business and offer identifiers
//   - Customer and business must be different users
//   - The package snapshot is fixed at creation and never changes
//   - Status transitions follow the closed edge set of the status graph
//   - updatedAt advances monotonically with each effective transition
//
// The offer identifier is kept for provenance only; no live catalog data is
// ever read through it after creation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the purchasing customer (fixed at creation)
	customerID kernel.UUID

	// businessID is the business fulfilling the order (fixed at creation)
	businessID kernel.UUID

	// offerID records which offer the purchased package belonged to
	offerID kernel.UUID

	// snapshot is the immutable copy of the purchased package terms
	snapshot PackageSnapshot

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the placement time
	createdAt time.Time

	// updatedAt is the time of the last effective status transition
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in StatusPending with the given frozen snapshot.
// This is the only way (besides RestoreOrder) to obtain a valid Order.
//
// Returns ErrSelfPurchase if customerID equals businessID; validation errors
// if any identifier or the snapshot is invalid.
//
// Example:
//
//	snapshot, _ := order.SnapshotFromPackage(pkg)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, pkg.BusinessID(), pkg.OfferID(), snapshot)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID, businessID, offerID kernel.UUID, snapshot PackageSnapshot) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		offerID.Validate(),
		snapshot.Validate(),
	); err != nil {
		return nil, err
	}

	if customerID.IsEqual(businessID) {
		return nil, ErrSelfPurchase
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		offerID:       offerID,
		snapshot:      snapshot,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without applying
// creation-time business rules (the stored state is taken as historical fact,
// including its timestamps and status).
func RestoreOrder(
	id, customerID, businessID, offerID kernel.UUID,
	snapshot PackageSnapshot,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		offerID.Validate(),
		snapshot.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		offerID:       offerID,
		snapshot:      snapshot,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// BusinessID returns the fulfilling business's identifier.
func (o *Order) BusinessID() kernel.UUID {
	return o.businessID
}

// OfferID returns the provenance identifier of the purchased offer.
func (o *Order) OfferID() kernel.UUID {
	return o.offerID
}

// Snapshot returns the frozen package snapshot attached at creation.
func (o *Order) Snapshot() PackageSnapshot {
	return o.snapshot
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last effective status transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsParticipant reports whether the given user is the customer or the business
// of this order.
func (o *Order) IsParticipant(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID) || o.businessID.IsEqual(userID)
}

// TransitionTo moves the order to the target status.
//
// Rules:
//   - A transition to the current status is an idempotent no-op: it succeeds
//     without advancing updatedAt, so client retries are safe.
//   - Otherwise the edge (current, target) must exist in the status graph;
//     any other request fails wrapping ErrInvalidTransition, including every
//     attempt to leave a terminal status.
//
// On an effective transition updatedAt advances to the current time.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if o.status == target {
		return nil
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel is a convenience alias for TransitionTo(StatusCancelled).
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}
