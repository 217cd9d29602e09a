package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByPartnerQueryHandler retrieves one partner's deliveries from
// the database, newest first, terminal states included.
//
// Example:
//
//	handler := NewGetDeliveriesByPartnerQueryHandler(db)
//	query, _ := NewGetDeliveriesByPartnerQuery(partnerID)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetDeliveriesByPartnerQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByPartnerQueryHandler creates a handler for per-partner
// delivery queries. Requires a GORM database connection for query execution.
func NewGetDeliveriesByPartnerQueryHandler(db *gorm.DB) GetDeliveriesByPartnerQueryHandler {
	return GetDeliveriesByPartnerQueryHandler{db: db}
}

// Handle executes the query for the partner named in the query.
// Returns deliveries in every status the partner has held, most recently
// updated first.
func (h GetDeliveriesByPartnerQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByPartnerQuery,
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
		WHERE partner_id = ?
		ORDER BY updated_at DESC
	`, query.PartnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
