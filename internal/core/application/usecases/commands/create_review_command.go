package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a customer's request to review a business
// owner. Rating bounds are validated at construction; eligibility and
// uniqueness are checked by the handler against stored orders and reviews.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	actor      kernel.Actor
	businessID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to leave a review.
// Validates the identifiers, the acting user and the rating bounds, returning
// errs.ValueIsOutOfRangeError for a rating outside [1, 5].
func NewCreateReviewCommand(
	reviewID kernel.UUID,
	actor kernel.Actor,
	businessID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	reviewCommand := CreateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setActor(actor),
		reviewCommand.setBusinessID(businessID),
		reviewCommand.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateReviewCommandIsNotConstructed if validation fails.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the unique identifier for the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Actor returns the acting user.
func (c CreateReviewCommand) Actor() kernel.Actor {
	return c.actor
}

// BusinessID returns the identifier of the reviewed business owner.
func (c CreateReviewCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// Rating returns the rating within [review.MinRating, review.MaxRating].
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-form review text.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateReviewCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	c.businessID = businessID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if err := review.ValidateRating(rating); err != nil {
		return err
	}

	c.rating = rating
	return nil
}
