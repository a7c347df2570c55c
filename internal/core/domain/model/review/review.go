package review

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1

	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not created
	// through the NewReview or RestoreReview factory methods.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

	// ErrDuplicateReview is returned when a customer already has a review for the
	// same business. At most one review exists per (customer, business) pair.
	ErrDuplicateReview = errors.New("customer has already reviewed this business")

	// ErrNotEligible is returned when a customer tries to review a business
	// without a completed order linking the two.
	ErrNotEligible = errors.New("no completed order entitles the customer to review this business")
)

// ValidateRating checks that a rating lies within [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	return nil
}

// Review represents a customer's rating of a business user.
//
// Review follows these invariants:
//   - Must have valid unique, customer, business and order identifiers
//   - Rating lies within [MinRating, MaxRating]
//   - Customer, business and order relations are fixed at creation
//   - Only the authoring customer may replace rating and comment
//
// The order identifier is a weak reference recording which completed order
// made the customer eligible; the review does not own the order.
type Review struct {
	// id is the unique identifier for the review
	id kernel.UUID

	// customerID is the authoring customer (fixed at creation)
	customerID kernel.UUID

	// businessID is the reviewed business (fixed at creation)
	businessID kernel.UUID

	// orderID is the completed order that made the customer eligible
	orderID kernel.UUID

	// rating is the given rating within [MinRating, MaxRating]
	rating int

	// comment is the free-form review text
	comment string

	// createdAt is the creation time
	createdAt time.Time

	// updatedAt is the time of the last content update
	updatedAt time.Time

	// isConstructed ensures the review was created via a factory method
	isConstructed bool
}

// NewReview creates a new Review with validation.
//
// Eligibility (a completed order between customer and business) and
// uniqueness per (customer, business) pair are cross-aggregate rules
// enforced by the application layer and the persistence model; this
// constructor validates the identifiers and the rating bounds.
func NewReview(id, customerID, businessID, orderID kernel.UUID, rating int, comment string) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		orderID.Validate(),
		ValidateRating(rating),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Review{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		orderID:       orderID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(
	id, customerID, businessID, orderID kernel.UUID,
	rating int, comment string,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		orderID.Validate(),
		ValidateRating(rating),
	); err != nil {
		return nil, err
	}

	return &Review{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		orderID:       orderID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Review instance was properly constructed through a factory method.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the authoring customer's identifier.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// BusinessID returns the reviewed business's identifier.
func (r *Review) BusinessID() kernel.UUID {
	return r.businessID
}

// OrderID returns the weak reference to the qualifying completed order.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// Rating returns the given rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the review text.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the creation time.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the time of the last content update.
func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsAuthor reports whether the given user authored this review.
func (r *Review) IsAuthor(userID kernel.UUID) bool {
	return r.customerID.IsEqual(userID)
}

// UpdateContent replaces the rating and comment of the review.
// Identity and relations stay untouched; updatedAt advances.
// The caller is responsible for verifying the actor is the author.
func (r *Review) UpdateContent(rating int, comment string) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}

	r.rating = rating
	r.comment = comment
	r.updatedAt = time.Now().UTC()
	return nil
}
