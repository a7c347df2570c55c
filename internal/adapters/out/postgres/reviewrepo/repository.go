package reviewrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database. A violation of the composite
// unique index on (customer_id, business_id) is translated to
// review.ErrDuplicateReview, so a racing insert surfaces the same error as
// the application-level pre-check.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return review.ErrDuplicateReview
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing review to the database. The columns are selected
// explicitly: a struct update would skip zero values, silently keeping the
// old comment when the new one is empty.
func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("id = ?", dto.ID).
		Select("rating", "comment", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a review by ID.
func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBusiness retrieves all reviews left for a business owner, newest first.
func (r *GormReviewRepository) GetByBusiness(ctx context.Context, businessID kernel.UUID) ([]*review.Review, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rev, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, nil
}

// Exists reports whether the customer has already reviewed the business.
func (r *GormReviewRepository) Exists(ctx context.Context, customerID, businessID kernel.UUID) (bool, error) {
	if err := errors.Join(customerID.Validate(), businessID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("customer_id = ? AND business_id = ?", customerID.Bytes(), businessID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
