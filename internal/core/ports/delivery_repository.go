// Package ports defines repository and outbound-service interfaces for the
// fulfillment domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries with their
// complete lifecycle state.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The write is guarded by the aggregate's version: when the stored row
	// carries a different version the update affects no rows and a
	// VersionIsInvalidError is returned, so a lost accept race surfaces at
	// commit time instead of silently overwriting the winner.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no delivery carries the ID.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery fulfilling the given order.
	// Deliveries map 1:1 to orders, so at most one result exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllPending retrieves deliveries still waiting for a partner to
	// accept, oldest first. Used by the availability broadcast job.
	GetAllPending(ctx context.Context) ([]*delivery.Delivery, error)
}
