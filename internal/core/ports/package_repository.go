package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
)

// PackageRepository is the read-only gateway to the offer catalog, the
// source packages are snapshotted from at purchase time. Orders keep their
// own copy of the terms, so this port is only consulted when placing an
// order.
type PackageRepository interface {
	// Get retrieves a package by its unique identifier.
	// Returns errs.ObjectNotFoundError if the package does not exist or has
	// been removed from the catalog.
	Get(ctx context.Context, id kernel.UUID) (*offer.Package, error)
}
