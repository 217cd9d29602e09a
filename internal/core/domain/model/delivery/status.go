package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so a delivery can
// only walk the workflow the physical handoff actually follows.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal; cancellation is only possible before
// the package has been picked up.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a delivery is created alongside an
	// order. Pending deliveries have no delivery partner yet.
	Pending

	// Assigned indicates a delivery partner has accepted the delivery.
	Assigned

	// PickedUp indicates the partner has collected the package at the store.
	PickedUp

	// InTransit indicates the package is on its way to the customer.
	InTransit

	// Delivered indicates the handoff completed. Terminal.
	Delivered

	// Cancelled indicates the delivery was abandoned before pickup. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/database representation of every status.
// Strings are lowercase snake_case to match the persisted values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses a delivery may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the complete transition table. A missing from-state or
// an empty to-set means the state is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Assigned, Cancelled},
		Assigned:  {PickedUp, Cancelled},
		PickedUp:  {InTransit},
		InTransit: {Delivered},
	}
}

// StatusFromString parses a persisted or request status string.
// Returns an errs.ValueIsInvalidError for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the legal delivery states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to the requested one.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status if the move is legal.
//
// Returns an IllegalTransitionError (wrapping ErrIllegalTransition) for any
// pair outside the transition table, including every transition out of a
// terminal state and any transition involving an invalid status.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, NewIllegalTransitionError(s, to)
	}
	return to, nil
}
