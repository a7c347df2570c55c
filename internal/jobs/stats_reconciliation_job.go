package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatsReconciliationJob periodically rebuilds the business stats cache.
// The command path refreshes affected rows transactionally; this job is the
// safety net that repairs any drift between the cache and the source tables.
type StatsReconciliationJob struct {
	handler  commands.RecomputeStatsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsReconciliationJob creates a job that runs a full cache rebuild on
// the given cron schedule (six-field expression with seconds).
func NewStatsReconciliationJob(
	handler commands.RecomputeStatsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatsReconciliationJob {
	return &StatsReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_reconciliation_job"),
	}
}

// Start schedules the reconciliation job.
func (j *StatsReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecomputeStatsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stats reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *StatsReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats reconciliation job stopped")
}
