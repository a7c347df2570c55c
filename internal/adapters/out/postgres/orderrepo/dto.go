// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The package snapshot lives inline in the orders row: the row is
// self-contained and never joined back to the offer catalog.
type OrderDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `gorm:"type:uuid;index"`
	BusinessID uuid.UUID   `gorm:"type:uuid;index"`
	OfferID    uuid.UUID   `gorm:"type:uuid"`
	Snapshot   SnapshotDTO `gorm:"embedded;embeddedPrefix:snapshot_"`
	Status     string      `gorm:"type:varchar(16);index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SnapshotDTO represents the frozen package terms embedded in the order row.
type SnapshotDTO struct {
	Title        string          `gorm:"type:varchar(255)"`
	Description  string          `gorm:"type:text"`
	Tier         string          `gorm:"type:varchar(16)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Revisions    int
	DeliveryDays int
	Features     []string `gorm:"serializer:json;type:jsonb"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	snapshot := aggregate.Snapshot()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		BusinessID: aggregate.BusinessID().Bytes(),
		OfferID:    aggregate.OfferID().Bytes(),
		Snapshot: SnapshotDTO{
			Title:        snapshot.Title(),
			Description:  snapshot.Description(),
			Tier:         snapshot.Tier().String(),
			Price:        snapshot.Price(),
			Revisions:    snapshot.Revisions(),
			DeliveryDays: snapshot.DeliveryDays(),
			Features:     snapshot.Features(),
		},
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the frozen snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}
	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}

	tier, err := offer.TierFromString(dto.Snapshot.Tier)
	if err != nil {
		return nil, err
	}
	snapshot, err := order.RestoreSnapshot(
		dto.Snapshot.Title,
		dto.Snapshot.Description,
		tier,
		dto.Snapshot.Price,
		dto.Snapshot.Revisions,
		dto.Snapshot.DeliveryDays,
		dto.Snapshot.Features,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, businessID, offerID, snapshot, status, dto.CreatedAt, dto.UpdatedAt)
}
