package offerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Get retrieves a package by ID. Returns errs.ObjectNotFoundError if the
// package does not exist, which order placement reports as an unavailable
// source.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a package to the catalog. The workflow itself never creates
// packages; catalog seeding and tests do.
func (r *GormPackageRepository) Add(ctx context.Context, pkg *offer.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(pkg)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes a package from the catalog. Orders keep their snapshots,
// so deleting a package never touches existing orders.
func (r *GormPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id.Bytes()).Error
}
