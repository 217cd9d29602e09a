package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// scanDeliveryRows maps raw delivery rows onto the shared read projection.
// Column order must match the SELECT lists in the delivery listing queries.
func scanDeliveryRows(rows *sql.Rows) ([]DeliveryQueryResponse, error) {
	deliveries := make([]DeliveryQueryResponse, 0)

	for rows.Next() {
		var (
			id, orderID      uuid.UUID
			partnerID        *uuid.UUID
			status           string
			pickupAddress    string
			deliveryAddress  string
			distanceKm       float64
			deliveryFee      decimal.Decimal
			estimatedMinutes int
			assignedAt       *time.Time
			pickedUpAt       *time.Time
			deliveredAt      *time.Time
		)

		err := rows.Scan(
			&id,
			&orderID,
			&partnerID,
			&status,
			&pickupAddress,
			&deliveryAddress,
			&distanceKm,
			&deliveryFee,
			&estimatedMinutes,
			&assignedAt,
			&pickedUpAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		response := DeliveryQueryResponse{
			Status:           status,
			PickupAddress:    pickupAddress,
			DeliveryAddress:  deliveryAddress,
			DistanceKm:       distanceKm,
			DeliveryFee:      deliveryFee,
			EstimatedMinutes: estimatedMinutes,
			AssignedAt:       assignedAt,
			PickedUpAt:       pickedUpAt,
			DeliveredAt:      deliveredAt,
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if partnerID != nil {
			partner, idErr := kernel.UUIDFromBytes(partnerID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.PartnerID = &partner
		}

		deliveries = append(deliveries, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
