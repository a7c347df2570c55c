package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand represents a request to change the rating and comment
// of an existing review. Only the review's author may update it.
type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	actor    kernel.Actor
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

// NewUpdateReviewCommand creates a command to update a review.
// Validates the review ID, the acting user and the rating bounds.
func NewUpdateReviewCommand(
	reviewID kernel.UUID,
	actor kernel.Actor,
	rating int,
	comment string,
) (UpdateReviewCommand, error) {
	reviewCommand := UpdateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setActor(actor),
		reviewCommand.setRating(rating),
	); err != nil {
		return UpdateReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateReviewCommandIsNotConstructed if validation fails.
func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to update.
func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Actor returns the acting user.
func (c UpdateReviewCommand) Actor() kernel.Actor {
	return c.actor
}

// Rating returns the new rating within [review.MinRating, review.MaxRating].
func (c UpdateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the new free-form review text.
func (c UpdateReviewCommand) Comment() string {
	return c.comment
}

func (c *UpdateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *UpdateReviewCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateReviewCommand) setRating(rating int) error {
	if err := review.ValidateRating(rating); err != nil {
		return err
	}

	c.rating = rating
	return nil
}
