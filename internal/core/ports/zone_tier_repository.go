package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/pricing"
)

// ZoneTierRepository defines the read contract for the zone pricing schedule.
// The schedule is reference data maintained out of band (seeded at startup,
// edited by operations), so the domain only ever reads it.
type ZoneTierRepository interface {
	// GetAllActive retrieves the active pricing tiers in ascending
	// minDistance order, the order fee resolution walks them in.
	GetAllActive(ctx context.Context) ([]pricing.ZoneTier, error)
}
