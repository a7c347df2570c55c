// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
// The one-review-per-customer-business rule is enforced here with a composite
// unique index, backing up the application-level pre-check.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review aggregates.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_customer_business"`
	BusinessID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_customer_business;index"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	Rating     int       `gorm:"type:smallint"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		BusinessID: aggregate.BusinessID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Rating:     aggregate.Rating(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
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
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, customerID, businessID, orderID, dto.Rating, dto.Comment, dto.CreatedAt, dto.UpdatedAt)
}
