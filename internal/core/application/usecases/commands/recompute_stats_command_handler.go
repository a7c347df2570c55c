package commands

import (
	"context"
)

// RecomputeStatsCommandHandler rebuilds the stats cache for every business.
// The whole rebuild runs in one transaction so readers never observe a
// half-reconciled cache.
type RecomputeStatsCommandHandler struct {
	uowFactory StatsUoWFactory
}

// NewRecomputeStatsCommandHandler creates a handler for the bulk cache rebuild.
func NewRecomputeStatsCommandHandler(uowFactory StatsUoWFactory) RecomputeStatsCommandHandler {
	return RecomputeStatsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes every cached stats row from the orders and reviews tables,
// upserting current businesses and removing rows for businesses that no longer
// have any activity.
func (h RecomputeStatsCommandHandler) Handle(ctx context.Context, cmd RecomputeStatsCommand) error {
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

	if err := uow.StatsRepository().RecomputeAll(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
