// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// The stats cache is recomputed inside the same transaction as the write that
// invalidated it, so every write-side unit of work exposes StatsRepository.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// PackageRepoFactory provides access to the offer catalog within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// StatsRepoFactory provides access to the stats cache within a transaction.
	StatsRepoFactory interface {
		StatsRepository() ports.StatsRepository
	}

	// OrderUoW manages transactions for order workflow operations: placing an
	// order reads the catalog, writes the order and refreshes the stats cache.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
		StatsRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review operations: creating a review
	// consults orders for eligibility, writes the review and refreshes the
	// stats cache.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		StatsRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// StatsUoW manages transactions for the bulk stats reconciliation run.
	StatsUoW interface {
		TxManager
		StatsRepoFactory
	}

	// StatsUoWFactory creates new stats unit of work instances.
	StatsUoWFactory interface {
		Create() StatsUoW
	}
)
