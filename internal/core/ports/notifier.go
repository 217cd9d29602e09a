package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier defines the outbound contract for delivering lifecycle messages to
// users. Implementations enqueue the messages durably (outbox rows, a broker,
// a push gateway); the domain only describes who hears what.
type Notifier interface {
	// Notify records one notification directive for its recipient.
	Notify(ctx context.Context, notification delivery.Notification) error

	// Broadcast fans one directive out to every currently available delivery
	// partner, excluding the IDs in exclude. Used to announce a new pending
	// delivery and to tell losing partners an accept race is over.
	Broadcast(ctx context.Context, notification delivery.Notification, exclude []kernel.UUID) error
}
