package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrRecomputeStatsCommandIsNotConstructed = errors.New(
	"RecomputeStatsCommand must be created via NewRecomputeStatsCommand constructor",
)

// RecomputeStatsCommand triggers a full rebuild of the business stats cache.
// Command-side writes keep the cache fresh transactionally; this command is
// the safety net that repairs any drift, scheduled by the reconciliation job.
//
// Example:
//
//	cmd := NewRecomputeStatsCommand()
//	handler := NewRecomputeStatsCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
type RecomputeStatsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecomputeStatsCommand creates a new command to trigger a cache rebuild.
// This is a parameterless command covering every business on the platform.
func NewRecomputeStatsCommand() RecomputeStatsCommand {
	return RecomputeStatsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecomputeStatsCommandIsNotConstructed if validation fails.
func (c *RecomputeStatsCommand) Validate() error {
	return c.guard.Validate(
		ErrRecomputeStatsCommandIsNotConstructed,
	)
}
