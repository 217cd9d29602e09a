package zonerepo

import (
	"context"

	"fulfillment/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormZoneTierRepository implements ZoneTierRepository using GORM.
type GormZoneTierRepository struct {
	db *gorm.DB
}

// NewGormZoneTierRepository creates a new GORM zone tier repository.
func NewGormZoneTierRepository(db *gorm.DB) *GormZoneTierRepository {
	return &GormZoneTierRepository{db: db}
}

// GetAllActive retrieves the active pricing tiers in ascending minDistance
// order, the order fee resolution walks them in.
func (r *GormZoneTierRepository) GetAllActive(ctx context.Context) ([]pricing.ZoneTier, error) {
	var dtos []ZoneTierDTO
	if err := r.db.WithContext(ctx).
		Order("min_distance").
		Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	tiers := make([]pricing.ZoneTier, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}

// SeedDefaultSchedule inserts the standard four-tier schedule when the table
// is empty. Idempotent: an already-populated schedule, default or edited, is
// left untouched.
func SeedDefaultSchedule(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&ZoneTierDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []ZoneTierDTO{
		{
			ID:          uuid.New(),
			Name:        "Inner City",
			MinDistance: 0,
			MaxDistance: 5,
			BaseFee:     decimal.NewFromInt(30),
			PerKmRate:   decimal.NewFromInt(5),
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "Suburban",
			MinDistance: 5.01,
			MaxDistance: 15,
			BaseFee:     decimal.NewFromInt(50),
			PerKmRate:   decimal.NewFromInt(8),
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "Rural",
			MinDistance: 15.01,
			MaxDistance: 30,
			BaseFee:     decimal.NewFromInt(80),
			PerKmRate:   decimal.NewFromInt(12),
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "Extended Rural",
			MinDistance: 30.01,
			MaxDistance: 100,
			BaseFee:     decimal.NewFromInt(120),
			PerKmRate:   decimal.NewFromInt(15),
			IsActive:    true,
		},
	}

	return db.WithContext(ctx).Create(&defaults).Error
}
