package services

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrRoleViolation is returned when the acting user lacks the role or the
// relationship to the order (or review) required for the requested operation.
var ErrRoleViolation = errors.New("actor is not allowed to perform this operation")

// Relation describes how an actor is related to an order.
type Relation int

const (
	// RelationNone means the actor is not a participant of the order.
	RelationNone Relation = iota

	// RelationCustomer means the actor is the purchasing customer of the order.
	RelationCustomer

	// RelationBusiness means the actor is the fulfilling business of the order.
	RelationBusiness
)

// transitionEdge is a directed edge of the order status graph.
type transitionEdge struct {
	from order.Status
	to   order.Status
}

// transitionTable is the authorization table keyed by (currentStatus,
// targetStatus) listing the relations allowed to drive that edge:
//
//	Pending    -> InProgress  business only
//	InProgress -> Completed   business only
//	Pending    -> Cancelled   customer or business
//
// An edge absent from the order status graph never reaches this table;
// it fails earlier with order.ErrInvalidTransition.
func transitionTable() map[transitionEdge]map[Relation]bool {
	return map[transitionEdge]map[Relation]bool{
		{from: order.StatusPending, to: order.StatusInProgress}: {
			RelationBusiness: true,
		},
		{from: order.StatusInProgress, to: order.StatusCompleted}: {
			RelationBusiness: true,
		},
		{from: order.StatusPending, to: order.StatusCancelled}: {
			RelationCustomer: true,
			RelationBusiness: true,
		},
	}
}

// TransitionPolicy is a domain service deciding whether an actor may drive
// a specific order status transition.
//
// The policy is deliberately table-driven: edge validity comes from the
// order status graph, authorization from the transition table above.
// Edge validity is checked first, so an impossible transition reports
// order.ErrInvalidTransition regardless of who asks for it.
//
// Example usage:
//
//	policy := services.NewTransitionPolicy()
//	if err := policy.AuthorizeTransition(o, actor, order.StatusCompleted); err != nil {
//	    // errors.Is(err, order.ErrInvalidTransition) or
//	    // errors.Is(err, services.ErrRoleViolation)
//	}
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// RelationOf derives the actor's relation to the order. A participant whose
// declared role contradicts their side of the order (e.g. a business-role
// actor appearing as the order's customer) counts as RelationNone.
func (p TransitionPolicy) RelationOf(o *order.Order, actor kernel.Actor) Relation {
	switch {
	case o.CustomerID().IsEqual(actor.ID()) && actor.IsCustomer():
		return RelationCustomer
	case o.BusinessID().IsEqual(actor.ID()) && actor.IsBusiness():
		return RelationBusiness
	default:
		return RelationNone
	}
}

// AuthorizeTransition decides whether actor may move the order to target.
//
// Returns:
//   - nil if the transition is authorized, or if target equals the current
//     status and the actor is a participant (the idempotent retry case)
//   - order.ErrInvalidTransition if (current, target) is not an edge of the
//     status graph
//   - ErrRoleViolation if the edge exists but the actor's relation is not in
//     the authorization table, or the actor is no participant at all
func (p TransitionPolicy) AuthorizeTransition(o *order.Order, actor kernel.Actor, target order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	relation := p.RelationOf(o, actor)
	if relation == RelationNone {
		return ErrRoleViolation
	}

	// Idempotent re-submission: any participant may repeat the current status.
	if o.Status() == target {
		return nil
	}

	if _, err := o.Status().TransitionTo(target); err != nil {
		return err
	}

	if !transitionTable()[transitionEdge{from: o.Status(), to: target}][relation] {
		return ErrRoleViolation
	}

	return nil
}
