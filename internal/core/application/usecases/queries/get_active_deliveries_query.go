package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves all deliveries still in flight.
// Returns everything outside the terminal delivered/cancelled states for
// dispatch monitoring.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active deliveries: %w", err)
//	}
//	fmt.Printf("%d deliveries in flight\n", len(deliveries))
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve in-flight deliveries.
// This is a parameterless query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// DeliveryQueryResponse is the read-side projection of one delivery, shared
// by the active and per-partner listings.
type DeliveryQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	PartnerID        *kernel.UUID
	Status           string
	PickupAddress    string
	DeliveryAddress  string
	DistanceKm       float64
	DeliveryFee      decimal.Decimal
	EstimatedMinutes int
	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
}
