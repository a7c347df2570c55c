package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateReviewRepository struct{ mock.Mock }

func (m *MockCreateReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockCreateReviewRepository) Update(_ context.Context, _ *review.Review) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateReviewRepository) Get(_ context.Context, _ kernel.UUID) (*review.Review, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateReviewRepository) GetByBusiness(_ context.Context, _ kernel.UUID) ([]*review.Review, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateReviewRepository) Exists(ctx context.Context, customerID, businessID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, businessID)
	return args.Bool(0), args.Error(1)
}

type MockCreateReviewOrderRepository struct{ mock.Mock }

func (m *MockCreateReviewOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) GetByCustomer(_ context.Context, _ kernel.UUID, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) GetByBusiness(_ context.Context, _ kernel.UUID, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) UpdateStatus(_ context.Context, _ kernel.UUID, _, _ order.Status, _ time.Time) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateReviewOrderRepository) GetFirstCompleted(ctx context.Context, customerID, businessID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, customerID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCreateReviewStatsRepository struct{ mock.Mock }

func (m *MockCreateReviewStatsRepository) RecomputeBusiness(ctx context.Context, businessID kernel.UUID) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}
func (m *MockCreateReviewStatsRepository) RecomputeAll(_ context.Context) error {
	return errors.New("not implemented in mock")
}

type MockCreateReviewUoW struct{ mock.Mock }

func (m *MockCreateReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}
func (m *MockCreateReviewUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCreateReviewUoW) StatsRepository() ports.StatsRepository {
	args := m.Called()
	return args.Get(0).(ports.StatsRepository)
}

type MockCreateReviewUoWFactory struct{ mock.Mock }

func (m *MockCreateReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

func completedOrderFixture(t *testing.T, customerID, businessID kernel.UUID) *order.Order {
	t.Helper()

	pkg, err := offer.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), businessID,
		"Landing page", "", offer.TierPremium,
		decimal.NewFromInt(500), offer.UnlimitedRevisions, 10, nil,
	)
	require.NoError(t, err)
	snapshot, err := order.SnapshotFromPackage(pkg)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, businessID, pkg.OfferID(), snapshot)
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(order.StatusInProgress))
	require.NoError(t, o.TransitionTo(order.StatusCompleted))
	return o
}

func TestCreateReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	businessID := kernel.NewUUID()
	actor, _ := kernel.NewActor(customerID, kernel.RoleCustomer)
	completed := completedOrderFixture(t, customerID, businessID)
	cmd, _ := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, 5, "Excellent")

	reviewRepo := new(MockCreateReviewRepository)
	orderRepo := new(MockCreateReviewOrderRepository)
	statsRepo := new(MockCreateReviewStatsRepository)
	uow := new(MockCreateReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstCompleted", mock.Anything, customerID, businessID).Return(completed, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Exists", mock.Anything, customerID, businessID).Return(false, nil).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("RecomputeBusiness", mock.Anything, businessID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	reviewRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_NotEligible(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	businessID := kernel.NewUUID()
	actor, _ := kernel.NewActor(customerID, kernel.RoleCustomer)
	cmd, _ := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, 5, "")

	orderRepo := new(MockCreateReviewOrderRepository)
	uow := new(MockCreateReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstCompleted", mock.Anything, customerID, businessID).
			Return(nil, errs.NewObjectNotFoundError("businessID", businessID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, review.ErrNotEligible)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	businessID := kernel.NewUUID()
	actor, _ := kernel.NewActor(customerID, kernel.RoleCustomer)
	completed := completedOrderFixture(t, customerID, businessID)
	cmd, _ := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, 2, "Changed my mind")

	reviewRepo := new(MockCreateReviewRepository)
	orderRepo := new(MockCreateReviewOrderRepository)
	uow := new(MockCreateReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstCompleted", mock.Anything, customerID, businessID).Return(completed, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Exists", mock.Anything, customerID, businessID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, review.ErrDuplicateReview)
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_DuplicateFromUniqueIndex(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	businessID := kernel.NewUUID()
	actor, _ := kernel.NewActor(customerID, kernel.RoleCustomer)
	completed := completedOrderFixture(t, customerID, businessID)
	cmd, _ := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, 4, "")

	reviewRepo := new(MockCreateReviewRepository)
	orderRepo := new(MockCreateReviewOrderRepository)
	uow := new(MockCreateReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstCompleted", mock.Anything, customerID, businessID).Return(completed, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Exists", mock.Anything, customerID, businessID).Return(false, nil).Once(),
		// a racing insert won between the pre-check and the write
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).
			Return(review.ErrDuplicateReview).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, review.ErrDuplicateReview)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_BusinessActorRejected(t *testing.T) {
	ctx := t.Context()
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleBusiness)
	cmd, _ := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, kernel.NewUUID(), 5, "")

	factory := new(MockCreateReviewUoWFactory)
	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrRoleViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateReviewCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateReviewCommand{} // not constructed properly
	factory := new(MockCreateReviewUoWFactory)
	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
