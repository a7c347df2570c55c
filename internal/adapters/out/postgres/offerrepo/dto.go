// Package offerrepo provides the read-side gateway to the offer catalog.
// Orders snapshot the package terms at purchase time, so this package only
// needs to load packages, never to mutate them through the workflow.
package offerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageDTO represents the database structure of one offer package.
type PackageDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID      uuid.UUID `gorm:"type:uuid;index"`
	BusinessID   uuid.UUID `gorm:"type:uuid;index"`
	Title        string    `gorm:"type:varchar(255)"`
	Description  string    `gorm:"type:text"`
	Tier         string    `gorm:"type:varchar(16)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Revisions    int
	DeliveryDays int
	Features     []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for package entities.
// Overrides GORM's default naming convention to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package domain entity to its database representation.
func fromDomain(pkg *offer.Package) PackageDTO {
	return PackageDTO{
		ID:           pkg.ID().Bytes(),
		OfferID:      pkg.OfferID().Bytes(),
		BusinessID:   pkg.BusinessID().Bytes(),
		Title:        pkg.Title(),
		Description:  pkg.Description(),
		Tier:         pkg.Tier().String(),
		Price:        pkg.Price(),
		Revisions:    pkg.Revisions(),
		DeliveryDays: pkg.DeliveryDays(),
		Features:     pkg.Features(),
	}
}

// toDomain converts a database DTO to a package domain entity.
func toDomain(dto PackageDTO) (*offer.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	tier, err := offer.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}

	return offer.RestorePackage(
		id, offerID, businessID,
		dto.Title, dto.Description,
		tier, dto.Price,
		dto.Revisions, dto.DeliveryDays,
		dto.Features,
	)
}
