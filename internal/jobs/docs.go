// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order and review workflow.
//
// # Available Jobs
//
// 1. StatsReconciliationJob - Rebuilds the per-business stats cache from the
// orders and reviews tables, repairing any drift the transactional refresh
// on the command path could not cover.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recomputeStatsHandler, "0 */5 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation schedule is a six-field cron expression with seconds,
// configured through the application config. The rebuild runs in one
// transaction, so readers never observe a half-reconciled cache.
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; the cache
// simply stays at its last consistent state in between.
package jobs
