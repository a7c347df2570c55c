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
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceOrderRepository struct{ mock.Mock }

func (m *MockPlaceOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockPlaceOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockPlaceOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) GetByCustomer(_ context.Context, _ kernel.UUID, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) GetByBusiness(_ context.Context, _ kernel.UUID, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) UpdateStatus(_ context.Context, _ kernel.UUID, _, _ order.Status, _ time.Time) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) GetFirstCompleted(_ context.Context, _, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPlacePackageRepository struct{ mock.Mock }

func (m *MockPlacePackageRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Package), args.Error(1)
}

type MockPlaceStatsRepository struct{ mock.Mock }

func (m *MockPlaceStatsRepository) RecomputeBusiness(ctx context.Context, businessID kernel.UUID) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}
func (m *MockPlaceStatsRepository) RecomputeAll(_ context.Context) error {
	return errors.New("not implemented in mock")
}

type MockPlaceUoW struct{ mock.Mock }

func (m *MockPlaceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPlaceUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}
func (m *MockPlaceUoW) StatsRepository() ports.StatsRepository {
	args := m.Called()
	return args.Get(0).(ports.StatsRepository)
}

type MockPlaceUoWFactory struct{ mock.Mock }

func (m *MockPlaceUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func placeTestPackage(t *testing.T, businessID kernel.UUID) *offer.Package {
	t.Helper()
	pkg, err := offer.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), businessID,
		"Logo design", "Three concepts", offer.TierStandard,
		decimal.NewFromInt(150), 3, 5, []string{"Logo", "Source files"},
	)
	require.NoError(t, err)
	return pkg
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	pkg := placeTestPackage(t, businessID)
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, pkg.ID())

	orderRepo := new(MockPlaceOrderRepository)
	pkgRepo := new(MockPlacePackageRepository)
	statsRepo := new(MockPlaceStatsRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", mock.Anything, pkg.ID()).Return(pkg, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("RecomputeBusiness", mock.Anything, businessID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	pkgRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SnapshotFrozenAtPurchase(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	pkg := placeTestPackage(t, businessID)
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, pkg.ID())

	orderRepo := new(MockPlaceOrderRepository)
	pkgRepo := new(MockPlacePackageRepository)
	statsRepo := new(MockPlaceStatsRepository)
	uow := new(MockPlaceUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PackageRepository").Return(pkgRepo).Once()
	pkgRepo.On("Get", mock.Anything, pkg.ID()).Return(pkg, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()

	var captured *order.Order
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*order.Order)
		}).Return(nil).Once()
	uow.On("StatsRepository").Return(statsRepo).Once()
	statsRepo.On("RecomputeBusiness", mock.Anything, businessID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, captured)
	require.Equal(t, order.StatusPending, captured.Status())
	require.Equal(t, actor.ID(), captured.CustomerID())
	require.Equal(t, businessID, captured.BusinessID())
	require.Equal(t, pkg.Title(), captured.Snapshot().Title())
	require.True(t, pkg.Price().Equal(captured.Snapshot().Price()))
	require.Equal(t, pkg.Features(), captured.Snapshot().Features())
}

func TestPlaceOrderCommandHandler_Handle_BusinessActorRejected(t *testing.T) {
	ctx := t.Context()
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleBusiness)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, kernel.NewUUID())

	factory := new(MockPlaceUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrRoleViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_PackageGone(t *testing.T) {
	ctx := t.Context()
	packageID := kernel.NewUUID()
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, packageID)

	pkgRepo := new(MockPlacePackageRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", mock.Anything, packageID).
			Return(nil, errs.NewObjectNotFoundError("packageID", packageID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPackageSourceUnavailable)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	pkgRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SelfPurchase(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	pkg := placeTestPackage(t, buyerID) // the buyer owns the package
	actor, _ := kernel.NewActor(buyerID, kernel.RoleCustomer)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, pkg.ID())

	pkgRepo := new(MockPlacePackageRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", mock.Anything, pkg.ID()).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrSelfPurchase)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	pkg := placeTestPackage(t, businessID)
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, pkg.ID())

	orderRepo := new(MockPlaceOrderRepository)
	pkgRepo := new(MockPlacePackageRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", mock.Anything, pkg.ID()).Return(pkg, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockPlaceUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
