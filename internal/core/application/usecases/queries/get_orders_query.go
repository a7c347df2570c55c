// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read with
// direct SQL and return flat read models, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders the acting user participates in:
// customers see the orders they placed, business owners the orders addressed
// to them. An optional status filter narrows the result.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(actor, order.StatusUnknown)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing the actor's orders.
// A statusFilter of order.StatusUnknown disables status filtering.
func NewGetOrdersQuery(actor kernel.Actor, statusFilter order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if statusFilter != order.StatusUnknown {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:        actor,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// StatusFilter returns the requested status filter, or order.StatusUnknown
// when the query is unfiltered.
func (q GetOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// GetOrdersQueryResponse is the flat read model of one order, carrying the
// frozen package terms the order was purchased under.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	BusinessID   kernel.UUID
	OfferID      kernel.UUID
	Title        string
	Description  string
	Tier         string
	Price        decimal.Decimal
	Revisions    int
	DeliveryDays int
	Features     []string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
