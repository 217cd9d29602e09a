package delivery

import "fulfillment/internal/core/domain/model/kernel"

// Message template keys raised by delivery lifecycle events. The notification
// adapter resolves these to concrete copy; the domain only names the event.
const (
	TemplateDeliveryAssigned  = "delivery_assigned"
	TemplateDeliveryPickedUp  = "delivery_picked_up"
	TemplateDeliveryInTransit = "delivery_in_transit"
	TemplateDeliveryDelivered = "delivery_delivered"
	TemplateDeliveryCancelled = "delivery_cancelled"

	// TemplateDeliveryAvailable is broadcast to available partners while a
	// delivery sits unassigned (first-accept-first-serve fan-out).
	TemplateDeliveryAvailable = "delivery_available"

	// TemplateDeliveryTaken tells the losing partners an accept race is over.
	TemplateDeliveryTaken = "delivery_taken"
)

// Notification is a side-effect description emitted by a state transition:
// who should be told, with which message template, about which delivery.
// The aggregate performs no I/O itself — directives are drained by the
// application layer and handed to the Notifier port after commit.
type Notification struct {
	RecipientID kernel.UUID
	TemplateKey string
	DeliveryID  kernel.UUID
	OrderID     kernel.UUID
}
