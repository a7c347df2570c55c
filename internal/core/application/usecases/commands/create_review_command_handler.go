package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CreateReviewCommandHandler handles the business logic for leaving a review.
// A customer may review a business owner once, and only after at least one
// completed order between the pair. The business stats cache is refreshed in
// the same transaction.
//
// Example:
//
//	handler := NewCreateReviewCommandHandler(uowFactory)
//	cmd, _ := NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, 5, "Great work")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, review.ErrNotEligible):
//	    log.Println("No completed order with this business")
//	case errors.Is(err, review.ErrDuplicateReview):
//	    log.Println("Already reviewed this business")
//	}
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
// Requires a ReviewUoWFactory for transactional persistence.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review creation command.
// Only customers may review. Eligibility requires a completed order linking
// the customer to the business (review.ErrNotEligible otherwise); the
// duplicate check is repeated by the store's unique index, so a racing
// insert still surfaces review.ErrDuplicateReview.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsCustomer() {
		return services.ErrRoleViolation
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	completedOrder, err := uow.OrderRepository().GetFirstCompleted(ctx, cmd.Actor().ID(), cmd.BusinessID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return review.ErrNotEligible
	}
	if err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.Exists(ctx, cmd.Actor().ID(), cmd.BusinessID())
	if err != nil {
		return err
	}
	if exists {
		return review.ErrDuplicateReview
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(),
		cmd.Actor().ID(),
		cmd.BusinessID(),
		completedOrder.ID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.StatsRepository().RecomputeBusiness(ctx, cmd.BusinessID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
