package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultDeliveryFee is charged when no configured tier covers the distance.
// Fee resolution deliberately never fails: a zone-configuration gap must not
// block checkout, so uncovered distances degrade to this flat fee. Callers
// should log the degradation as a warning since it signals missing
// configuration.
var DefaultDeliveryFee = decimal.NewFromInt(100)

// Base and per-kilometer components of the delivery time estimate.
const (
	estimateBaseMinutes  = 30
	estimateMinutesPerKm = 10
)

// FeeBreakdown is the result of resolving a distance against a pricing
// schedule. All amounts are decimal currency units rounded half-up to
// 2 decimal places. MatchedTier is nil when the default fee was applied.
//
// A FeeBreakdown is created fresh per calculation and never persisted here;
// the order/delivery record owns the resulting fee.
type FeeBreakdown struct {
	BaseFee     decimal.Decimal
	DistanceFee decimal.Decimal
	TotalFee    decimal.Decimal
	MatchedTier *ZoneTier
}

// IsFallback reports whether the breakdown came from the default fee rather
// than a configured tier.
func (b FeeBreakdown) IsFallback() bool {
	return b.MatchedTier == nil
}

// Resolve maps a delivery distance onto the pricing schedule.
//
// Inactive and improperly constructed tiers are ignored. The first remaining
// tier whose inclusive range covers the distance wins; when tiers overlap
// (a data-integrity issue) input order keeps the result deterministic.
// Distances outside every configured range resolve to DefaultDeliveryFee with
// no matched tier — this operation is total and never returns an error.
func Resolve(distanceKm float64, tiers []ZoneTier) FeeBreakdown {
	for i := range tiers {
		tier := tiers[i]
		if tier.Validate() != nil || !tier.IsActive() || !tier.Covers(distanceKm) {
			continue
		}

		distanceFee := decimal.NewFromFloat(distanceKm).Mul(tier.PerKmRate()).Round(2)
		return FeeBreakdown{
			BaseFee:     tier.BaseFee().Round(2),
			DistanceFee: distanceFee,
			TotalFee:    tier.BaseFee().Add(distanceFee).Round(2),
			MatchedTier: &tier,
		}
	}

	return FeeBreakdown{
		BaseFee:     DefaultDeliveryFee,
		DistanceFee: decimal.Zero,
		TotalFee:    DefaultDeliveryFee,
		MatchedTier: nil,
	}
}

// EstimateMinutes returns the estimated delivery duration for a distance:
// 30 minutes of handling plus 10 minutes per kilometer, rounded to the
// nearest minute. This is the single home for an estimate the legacy system
// recomputed inline at every fee call site.
func EstimateMinutes(distanceKm float64) int {
	return int(math.Round(estimateBaseMinutes + distanceKm*estimateMinutesPerKm))
}
