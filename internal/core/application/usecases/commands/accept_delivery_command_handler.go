package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// AcceptDeliveryCommandHandler handles a partner claiming a pending delivery.
//
// The accept race is decided twice: in memory, where a partner already on the
// aggregate fails the claim with an AlreadyAssignedError, and at commit time,
// where the repository's version check catches two accepts racing through the
// in-memory check on separate transactions. Either way the loser gets a
// conflict, never a silent overwrite.
//
// Example:
//
//	handler := NewAcceptDeliveryCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrAlreadyAssigned):
//	    // 409: delivery already taken
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404: no such delivery
//	}
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
// Requires a DeliveryUoWFactory for the transactional claim and a Notifier
// for the post-commit customer notification and loser fan-out.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
// Loads the delivery, assigns the partner, and persists the change under the
// optimistic version check. After commit the customer is notified and the
// remaining available partners are told the delivery is taken; notification
// failures are logged, not returned, because the claim already stands.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	if err = aggregate.Assign(cmd.PartnerID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatchNotifications(ctx, aggregate)

	taken := delivery.Notification{
		TemplateKey: delivery.TemplateDeliveryTaken,
		DeliveryID:  aggregate.ID(),
		OrderID:     aggregate.OrderID(),
	}
	if err = h.notifier.Broadcast(ctx, taken, []kernel.UUID{cmd.PartnerID()}); err != nil {
		slog.Warn("taken broadcast failed",
			"deliveryId", aggregate.ID().String(), "error", err)
	}

	return nil
}

func (h AcceptDeliveryCommandHandler) dispatchNotifications(ctx context.Context, aggregate *delivery.Delivery) {
	for _, notification := range aggregate.PullNotifications() {
		if err := h.notifier.Notify(ctx, notification); err != nil {
			slog.Warn("notification dispatch failed",
				"deliveryId", notification.DeliveryID.String(),
				"template", notification.TemplateKey,
				"error", err)
		}
	}
}
