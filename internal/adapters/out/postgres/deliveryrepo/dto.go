// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Maps delivery domain entities to relational database tables with indexing for
// the status-driven listings and the per-partner job list. The version column
// carries the optimistic-concurrency token checked on every update.
type DeliveryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID  *uuid.UUID `gorm:"type:uuid;index"`

	Status string `gorm:"type:varchar(16);index"`

	PickupAddress   string
	DeliveryAddress string

	EstimatedDistanceKm float64
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(10,2)"`
	EstimatedMinutes    int

	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	Version int `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all delivery attributes including optional partner assignment and timestamps.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return DeliveryDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderID:             aggregate.OrderID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		PartnerID:           partnerID,
		Status:              aggregate.Status().String(),
		PickupAddress:       aggregate.PickupAddress(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		EstimatedDistanceKm: aggregate.EstimatedDistanceKm(),
		DeliveryFee:         aggregate.DeliveryFee(),
		EstimatedMinutes:    aggregate.EstimatedMinutes(),
		AssignedAt:          aggregate.AssignedAt(),
		PickedUpAt:          aggregate.PickedUpAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Version:             aggregate.Version(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate via RestoreDelivery, which re-checks the
// partner-presence and timestamp invariants the schema cannot express.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, customerID, partnerID, status,
		dto.PickupAddress, dto.DeliveryAddress,
		dto.EstimatedDistanceKm, dto.DeliveryFee, dto.EstimatedMinutes,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
		dto.Version,
	)
}
