package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a delivery to a
// new lifecycle state. The target state must be reachable from the current
// one under the delivery state machine; assigning additionally needs a
// partner identifier.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(deliveryID, delivery.PickedUp, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, delivery.ErrIllegalTransition) {
//	    // 400: transition not allowed from the current state
//	}
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	partnerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status update command.
// The delivery ID must be valid and the status must name a real delivery
// state. partnerID is optional and only consulted when assigning.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	status delivery.Status,
	partnerID *kernel.UUID,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being updated.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested target state.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// PartnerID returns the partner identifier for assignment, or nil.
func (c UpdateDeliveryStatusCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateDeliveryStatusCommand) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}

	c.partnerID = partnerID
	return nil
}
