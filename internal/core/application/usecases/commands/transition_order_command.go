package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// status on behalf of an acting user. Whether the actor may drive the
// transition is decided by the transition policy at handling time.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// Validates that the order ID, the acting user and the target status are valid.
func NewTransitionOrderCommand(orderID kernel.UUID, actor kernel.Actor, target order.Status) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setActor(actor),
		transitionCommand.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// NewCancelOrderCommand creates a command to cancel an order. It is a
// convenience constructor for the cancellation transition.
func NewCancelOrderCommand(orderID kernel.UUID, actor kernel.Actor) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, actor, order.StatusCancelled)
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c TransitionOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Target returns the requested target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
