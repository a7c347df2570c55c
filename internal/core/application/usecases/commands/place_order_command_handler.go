package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ErrPackageSourceUnavailable is returned when the purchased package cannot
// be loaded from the catalog (missing or already removed). It wraps the
// underlying not-found error.
var ErrPackageSourceUnavailable = errors.New("package source is unavailable")

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Loads the package from the catalog, freezes its terms into a snapshot and
// creates the order in pending status. The business stats cache is refreshed
// in the same transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), actor, packageID)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrPackageSourceUnavailable):
//	    log.Println("Package no longer offered")
//	case errors.Is(err, order.ErrSelfPurchase):
//	    log.Println("Cannot buy from yourself")
//	case err != nil:
//	    log.Printf("Placing order failed: %v", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Only customers may place orders; the snapshot is taken from the live
// package inside the transaction, so the frozen terms and the order row are
// consistent. Returns ErrPackageSourceUnavailable if the package is gone,
// order.ErrSelfPurchase if the buyer owns the package and
// services.ErrRoleViolation for non-customer actors.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsCustomer() {
		return services.ErrRoleViolation
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ErrPackageSourceUnavailable, err)
	}
	if err != nil {
		return err
	}

	snapshot, err := order.SnapshotFromPackage(pkg)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), pkg.BusinessID(), pkg.OfferID(), snapshot)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.StatsRepository().RecomputeBusiness(ctx, pkg.BusinessID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
