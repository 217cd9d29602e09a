package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrBroadcastPendingDeliveriesCommandIsNotConstructed = errors.New(
	"BroadcastPendingDeliveriesCommand must be created via NewBroadcastPendingDeliveriesCommand constructor",
)

// BroadcastPendingDeliveriesCommand re-announces every pending delivery to
// available partners. Issued by the scheduled re-broadcast job to cover
// deliveries whose creation-time broadcast failed or went unanswered.
type BroadcastPendingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewBroadcastPendingDeliveriesCommand creates a re-broadcast command.
// This is a parameterless command.
func NewBroadcastPendingDeliveriesCommand() BroadcastPendingDeliveriesCommand {
	return BroadcastPendingDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrBroadcastPendingDeliveriesCommandIsNotConstructed if validation fails.
func (c BroadcastPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastPendingDeliveriesCommandIsNotConstructed)
}
