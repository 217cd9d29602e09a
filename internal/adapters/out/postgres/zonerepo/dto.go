// Package zonerepo provides data transfer objects and mapping functions for
// the zone pricing schedule. The schedule is reference data: seeded at
// startup, edited by operations, and only ever read by the domain.
package zonerepo

import (
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneTierDTO represents the database structure for one pricing tier.
// Distance bounds are kilometers; fees are stored as numeric(10,2) so the
// schedule never accumulates float noise.
type ZoneTierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	MinDistance float64   `gorm:"index"`
	MaxDistance float64
	BaseFee     decimal.Decimal `gorm:"type:numeric(10,2)"`
	PerKmRate   decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsActive    bool            `gorm:"index"`
}

// TableName specifies the database table name for zone tiers.
func (ZoneTierDTO) TableName() string {
	return "zone_tiers"
}

// toDomain converts a database DTO to a pricing tier value object.
func toDomain(dto ZoneTierDTO) (pricing.ZoneTier, error) {
	return pricing.NewZoneTier(
		dto.Name,
		dto.MinDistance, dto.MaxDistance,
		dto.BaseFee, dto.PerKmRate,
		dto.IsActive,
	)
}
