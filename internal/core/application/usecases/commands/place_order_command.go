package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request by a customer to purchase a package.
// The package terms are snapshotted into the order at handling time, so later
// catalog edits never affect the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, actor, packageID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and pending", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     kernel.Actor
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID, the acting user and the package ID are valid.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(orderID kernel.UUID, actor kernel.Actor, packageID kernel.UUID) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActor(actor),
		orderCommand.setPackageID(packageID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c PlaceOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// PackageID returns the identifier of the package being purchased.
func (c PlaceOrderCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}
