package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
)

// Quote is the complete pre-order estimate for one delivery: how far the
// package travels, what the trip costs, and how long it should take.
type Quote struct {
	DistanceKm       float64
	Fee              pricing.FeeBreakdown
	EstimatedMinutes int
}

// QuoteCalculator is a domain service that turns a pickup/dropoff coordinate
// pair and a zone schedule into a delivery quote.
//
// Key responsibilities:
//   - Validating both coordinates before any arithmetic
//   - Measuring the great-circle distance between pickup and dropoff
//   - Resolving the fee against the zone schedule (first match wins, with a
//     flat fallback fee when no zone covers the distance)
//   - Estimating the delivery duration from the distance
//
// The calculator is stateless; the zone schedule is passed per call so the
// caller decides how fresh it needs to be.
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// Calculate produces a quote for a delivery from pickup to dropoff under the
// given zone schedule.
//
// Parameters:
//   - pickup: the store-side coordinate (must be constructed)
//   - dropoff: the customer-side coordinate (must be constructed)
//   - tiers: the active zone schedule, in ascending minDistance order
//
// Returns:
//   - Quote: distance in km (2 decimals), resolved fee breakdown, and the
//     estimated delivery time in whole minutes
//   - error: a validation error when either coordinate is not constructed
func (q QuoteCalculator) Calculate(
	pickup, dropoff kernel.Coordinate,
	tiers []pricing.ZoneTier,
) (Quote, error) {
	if err := pickup.Validate(); err != nil {
		return Quote{}, err
	}
	if err := dropoff.Validate(); err != nil {
		return Quote{}, err
	}

	distanceKm, err := pickup.DistanceTo(dropoff)
	if err != nil {
		return Quote{}, err
	}

	return q.CalculateFromDistance(distanceKm, tiers), nil
}

// CalculateFromDistance produces a quote for a distance the caller already
// measured, in kilometers. Pure resolution against the schedule, never
// errors; negative input is the caller's validation problem.
func (q QuoteCalculator) CalculateFromDistance(
	distanceKm float64,
	tiers []pricing.ZoneTier,
) Quote {
	return Quote{
		DistanceKm:       distanceKm,
		Fee:              pricing.Resolve(distanceKm, tiers),
		EstimatedMinutes: pricing.EstimateMinutes(distanceKm),
	}
}
