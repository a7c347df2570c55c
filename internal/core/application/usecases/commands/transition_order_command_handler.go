package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// TransitionOrderCommandHandler handles order status changes.
// Authorization is delegated to the transition policy; the write itself is a
// compare-and-set guarded by the status the decision was made against, so a
// concurrent writer cannot slip a conflicting transition in between.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	cmd, _ := NewTransitionOrderCommand(orderID, businessActor, order.StatusInProgress)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("Status graph forbids this move")
//	case errors.Is(err, services.ErrRoleViolation):
//	    log.Println("Actor may not drive this move")
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    log.Println("Lost the race, retry with fresh state")
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewTransitionOrderCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the status transition command.
// Re-submitting the order's current status is a successful no-op that writes
// nothing. A real transition updates the row with a compare-and-set on the
// prior status and refreshes the business stats cache in the same
// transaction; losing the race surfaces errs.ConcurrentModificationError.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeTransition(aggregate, cmd.Actor(), cmd.Target()); err != nil {
		return err
	}

	if aggregate.Status() == cmd.Target() {
		return nil
	}

	expected := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate.ID(), expected, aggregate.Status(), aggregate.UpdatedAt()); err != nil {
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
