package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateReviewCommandHandler handles edits to an existing review.
// The stats cache is refreshed in the same transaction since the business's
// average rating may change.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewUpdateReviewCommandHandler creates a handler for review updates.
// Requires a ReviewUoWFactory for transactional persistence.
func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review update command.
// Returns services.ErrRoleViolation when the actor is not the review's
// author and errs.ObjectNotFoundError when the review does not exist.
func (h UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()

	aggregate, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if !aggregate.IsAuthor(cmd.Actor().ID()) {
		return services.ErrRoleViolation
	}

	if err = aggregate.UpdateContent(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.StatsRepository().RecomputeBusiness(ctx, aggregate.BusinessID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
