package delivery

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

// Sentinel errors for classification via errors.Is. HTTP handlers map
// ErrIllegalTransition to 400 and ErrAlreadyAssigned to 409 so the partner app
// can show "already taken" instead of a generic failure.
var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyAssigned   = errors.New("delivery is already assigned")
)

// IllegalTransitionError reports a status change the transition table does
// not permit, e.g. pending directly to delivered, or any move out of a
// terminal state.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the
// rejected (from, to) pair.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// AlreadyAssignedError reports a lost first-accept-first-serve race: the
// delivery already has a partner, so a second accept must be rejected without
// disturbing the winner's assignment.
type AlreadyAssignedError struct {
	DeliveryID kernel.UUID
	PartnerID  kernel.UUID
}

// NewAlreadyAssignedError creates an AlreadyAssignedError naming the delivery
// and the partner currently holding it.
func NewAlreadyAssignedError(deliveryID, partnerID kernel.UUID) *AlreadyAssignedError {
	return &AlreadyAssignedError{DeliveryID: deliveryID, PartnerID: partnerID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: delivery %s is held by partner %s",
		ErrAlreadyAssigned, e.DeliveryID, e.PartnerID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}
