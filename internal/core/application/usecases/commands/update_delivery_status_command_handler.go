package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles lifecycle state changes on a
// delivery. The aggregate's state machine decides legality; the handler only
// supplies the transaction boundary and post-commit notification dispatch.
//
// Example:
//
//	handler := NewUpdateDeliveryStatusCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrIllegalTransition):
//	    // 400: state machine refused the move
//	case errors.Is(err, delivery.ErrAlreadyAssigned):
//	    // 409: assignment race lost
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404: no such delivery
//	}
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status
// updates. Requires a DeliveryUoWFactory for the transactional write and a
// Notifier for post-commit customer notifications.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
// Loads the delivery, applies the transition through the aggregate, and
// persists the result under the optimistic version check. Notifications
// queued by the transition are dispatched after commit; dispatch failures
// are logged, not returned.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Status(), cmd.PartnerID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, notification := range aggregate.PullNotifications() {
		if err = h.notifier.Notify(ctx, notification); err != nil {
			slog.Warn("notification dispatch failed",
				"deliveryId", notification.DeliveryID.String(),
				"template", notification.TemplateKey,
				"error", err)
		}
	}

	return nil
}
