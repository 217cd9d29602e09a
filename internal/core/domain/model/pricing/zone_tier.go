package pricing

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrZoneTierIsNotConstructed is returned when attempting to use an
// improperly initialized ZoneTier.
var ErrZoneTierIsNotConstructed = errs.NewValueIsRequiredError(
	"zone tier must be created via NewZoneTier constructor")

// ZoneTier is one band of the distance-based pricing schedule: deliveries
// whose distance falls inside [MinDistance, MaxDistance] (inclusive on both
// bounds) are priced at BaseFee plus PerKmRate per kilometer.
//
// Tiers are configured by the admin panel and are read-only inside this
// service. Across the active tiers of a schedule the distance ranges are
// expected not to overlap; Resolve stays deterministic even if they do by
// taking the first match in input order.
type ZoneTier struct { //nolint:recvcheck //using for validation
	name        string
	minDistance float64
	maxDistance float64
	baseFee     decimal.Decimal
	perKmRate   decimal.Decimal
	isActive    bool

	guard guard.ConstructorGuard
}

// NewZoneTier creates a validated pricing tier.
// Distances are kilometers; fees are decimal currency units as stored in the
// schedule's decimal(10,2) columns. minDistance must be non-negative,
// maxDistance must exceed minDistance, and fees must not be negative.
func NewZoneTier(
	name string,
	minDistance, maxDistance float64,
	baseFee, perKmRate decimal.Decimal,
	isActive bool,
) (ZoneTier, error) {
	tier := ZoneTier{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setName(name),
		tier.setRange(minDistance, maxDistance),
		tier.setFees(baseFee, perKmRate),
	); err != nil {
		return ZoneTier{}, err
	}

	return tier, nil
}

// Validate checks that the ZoneTier was created through NewZoneTier.
func (t ZoneTier) Validate() error {
	return t.guard.Validate(ErrZoneTierIsNotConstructed)
}

// Name returns the human-readable tier name, e.g. "Inner City".
func (t ZoneTier) Name() string {
	return t.name
}

// MinDistance returns the lower bound of the covered range in kilometers.
func (t ZoneTier) MinDistance() float64 {
	return t.minDistance
}

// MaxDistance returns the upper bound of the covered range in kilometers.
func (t ZoneTier) MaxDistance() float64 {
	return t.maxDistance
}

// BaseFee returns the flat fee charged for any delivery in this tier.
func (t ZoneTier) BaseFee() decimal.Decimal {
	return t.baseFee
}

// PerKmRate returns the per-kilometer rate applied to the full distance.
func (t ZoneTier) PerKmRate() decimal.Decimal {
	return t.perKmRate
}

// IsActive reports whether the tier participates in fee resolution.
func (t ZoneTier) IsActive() bool {
	return t.isActive
}

// Covers reports whether the distance falls inside the tier's range.
// Both bounds are inclusive, matching the reference schedule where adjacent
// tiers are separated by 0.01 km steps (0-5, 5.01-15, ...).
func (t ZoneTier) Covers(distanceKm float64) bool {
	return distanceKm >= t.minDistance && distanceKm <= t.maxDistance
}

// String implements fmt.Stringer for logging and diagnostics.
func (t ZoneTier) String() string {
	return fmt.Sprintf("ZoneTier(%s %.2f-%.2fkm base=%s perKm=%s)",
		t.name, t.minDistance, t.maxDistance, t.baseFee, t.perKmRate)
}

func (t *ZoneTier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	t.name = name
	return nil
}

func (t *ZoneTier) setRange(minDistance, maxDistance float64) error {
	if minDistance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minDistance",
			fmt.Errorf("%f is negative", minDistance))
	}
	if maxDistance <= minDistance {
		return errs.NewValueIsInvalidErrorWithCause("maxDistance",
			fmt.Errorf("%f is not greater than minDistance %f", maxDistance, minDistance))
	}

	t.minDistance = minDistance
	t.maxDistance = maxDistance
	return nil
}

func (t *ZoneTier) setFees(baseFee, perKmRate decimal.Decimal) error {
	if baseFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("baseFee",
			fmt.Errorf("%s is negative", baseFee))
	}
	if perKmRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("perKmRate",
			fmt.Errorf("%s is negative", perKmRate))
	}

	t.baseFee = baseFee
	t.perKmRate = perKmRate
	return nil
}
