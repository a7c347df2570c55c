package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the order status graph. It is also the answer for any attempt to
// leave a terminal status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal states with no outgoing edges.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first placed.
	// The business has not started work yet; either party may still cancel.
	StatusPending

	// StatusInProgress indicates the business has accepted the order
	// and work has started.
	StatusInProgress

	// StatusCompleted indicates the business has delivered the order.
	// This is a terminal state.
	StatusCompleted

	// StatusCancelled indicates the order was called off before work started.
	// This is a terminal state.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// allowedTransitions is the closed edge set of the order status graph.
// Any (from, to) pair not present here is an invalid transition.
func allowedTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		StatusPending: {
			StatusInProgress: true,
			StatusCancelled:  true,
		},
		StatusInProgress: {
			StatusCompleted: true,
		},
	}
}

// StatusFromString parses a status from its wire representation
// ("pending", "in_progress", "completed" or "cancelled").
// Returns an error for any other value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: StatusPending, StatusInProgress, StatusCompleted,
// StatusCancelled. StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "pending", "in_progress", "completed" or "cancelled" for valid
// statuses and "unknown" for invalid status values. Implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing edges.
// Completed and Cancelled orders never change again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the status graph contains the edge (s, target).
// A transition to the same status is not an edge; idempotent re-submission is
// handled by the aggregate, not the graph.
func (s Status) CanTransitionTo(target Status) bool {
	return allowedTransitions()[s][target]
}

// TransitionTo returns the target status if the edge (s, target) exists in the
// status graph.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (StatusUnknown, error wrapping ErrInvalidTransition) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}
