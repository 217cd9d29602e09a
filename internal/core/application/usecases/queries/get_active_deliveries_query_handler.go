package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the
// database. Filters out terminal states to show the live dispatch workload.
//
// Example:
//
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//	query := NewGetActiveDeliveriesQuery()
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active deliveries: %v", err)
//	    return err
//	}
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight deliveries.
// Returns deliveries in pending, assigned, picked_up, or in_transit status,
// oldest first so the longest-waiting deliveries surface on top.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			pickup_address,
			delivery_address,
			estimated_distance_km,
			delivery_fee,
			estimated_minutes,
			assigned_at,
			picked_up_at,
			delivered_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, delivery.Delivered.String(), delivery.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
