package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for opening a
// delivery. Quotes the fee against the active zone schedule, persists the
// pending delivery, and announces it to available partners after commit.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// Delivery is pending and partners have been told it is up for grabs
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a UoWFactory covering both the delivery repository and the zone
// schedule, and a Notifier for the post-commit availability broadcast.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery creation command.
// Reads the active zone schedule, quotes distance/fee/time for the coordinate
// pair, and persists the delivery in pending status, all in one transaction.
// After commit the delivery is broadcast to available partners; a broadcast
// failure is logged but does not fail the command, the periodic re-broadcast
// job covers the gap.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	tiers, err := uow.ZoneTierRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	quote, err := services.NewQuoteCalculator().Calculate(
		cmd.PickupLocation(), cmd.DropoffLocation(), tiers)
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.OrderID(), cmd.CustomerID(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		quote.DistanceKm, quote.Fee.TotalFee, quote.EstimatedMinutes)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	broadcast := delivery.Notification{
		TemplateKey: delivery.TemplateDeliveryAvailable,
		DeliveryID:  aggregate.ID(),
		OrderID:     aggregate.OrderID(),
	}
	if err = h.notifier.Broadcast(ctx, broadcast, nil); err != nil {
		slog.Warn("availability broadcast failed",
			"deliveryId", aggregate.ID().String(), "error", err)
	}

	return nil
}
