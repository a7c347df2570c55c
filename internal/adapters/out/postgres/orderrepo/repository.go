package orderrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves the orders placed by a customer, newest first.
// A statusFilter of order.StatusUnknown returns orders in every status.
func (r *GormOrderRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	statusFilter order.Status,
) ([]*order.Order, error) {
	return r.getByParticipant(ctx, "customer_id", customerID, statusFilter)
}

// GetByBusiness retrieves the orders addressed to a business owner, newest first.
// A statusFilter of order.StatusUnknown returns orders in every status.
func (r *GormOrderRepository) GetByBusiness(
	ctx context.Context,
	businessID kernel.UUID,
	statusFilter order.Status,
) ([]*order.Order, error) {
	return r.getByParticipant(ctx, "business_id", businessID, statusFilter)
}

func (r *GormOrderRepository) getByParticipant(
	ctx context.Context,
	column string,
	participantID kernel.UUID,
	statusFilter order.Status,
) ([]*order.Order, error) {
	if err := participantID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where(column+" = ?", participantID.Bytes())
	if statusFilter != order.StatusUnknown {
		query = query.Where("status = ?", statusFilter.String())
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus performs the compare-and-set status update: a single UPDATE
// guarded by the expected current status. Zero affected rows means the order
// is gone or another writer changed the status first, reported as
// errs.ConcurrentModificationError.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, target order.Status,
	updatedAt time.Time,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), target.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     target.String(),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order", id.String())
	}

	return nil
}

// GetFirstCompleted retrieves the most recently completed order linking a
// customer to a business.
func (r *GormOrderRepository) GetFirstCompleted(
	ctx context.Context,
	customerID, businessID kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(customerID.Validate(), businessID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ? AND status = ?",
			customerID.Bytes(), businessID.Bytes(), order.StatusCompleted.String()).
		Order("updated_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("completed order", customerID.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
