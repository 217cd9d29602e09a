package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
)

// ErrNoPendingDeliveries signals that nothing is waiting for a partner.
// Expected on most ticks of the re-broadcast job, callers should not treat
// it as a failure.
var ErrNoPendingDeliveries = errors.New("no pending deliveries found")

// BroadcastPendingDeliveriesCommandHandler re-broadcasts availability for
// deliveries still waiting on a partner. The creation-time broadcast is best
// effort, this handler is the retry path that keeps unclaimed deliveries
// visible.
type BroadcastPendingDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewBroadcastPendingDeliveriesCommandHandler creates a handler for the
// periodic re-broadcast of pending deliveries.
func NewBroadcastPendingDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
) BroadcastPendingDeliveriesCommandHandler {
	return BroadcastPendingDeliveriesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle re-announces every pending delivery, oldest first.
// Returns ErrNoPendingDeliveries when the queue is empty. A failed broadcast
// for one delivery is logged and does not stop the rest of the batch.
func (h BroadcastPendingDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd BroadcastPendingDeliveriesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.DeliveryRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(pending) == 0 {
		return ErrNoPendingDeliveries
	}

	for _, aggregate := range pending {
		broadcast := delivery.Notification{
			TemplateKey: delivery.TemplateDeliveryAvailable,
			DeliveryID:  aggregate.ID(),
			OrderID:     aggregate.OrderID(),
		}
		if err = h.notifier.Broadcast(ctx, broadcast, nil); err != nil {
			slog.Warn("availability re-broadcast failed",
				"deliveryId", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}
