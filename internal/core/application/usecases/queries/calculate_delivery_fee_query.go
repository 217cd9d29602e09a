package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculateDeliveryFeeQueryIsNotConstructed = errors.New(
	"CalculateDeliveryFeeQuery must be created via NewCalculateDeliveryFeeQuery constructor",
)

// CalculateDeliveryFeeQuery quotes a delivery without creating one: distance,
// fee breakdown, and time estimate for a pickup/dropoff coordinate pair.
// Customers see this before placing an order.
//
// Example:
//
//	pickup, _ := kernel.NewCoordinate(26.6602, 86.2070)
//	dropoff, _ := kernel.NewCoordinate(26.7191, 86.0951)
//	query, err := NewCalculateDeliveryFeeQuery(pickup, dropoff)
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	fmt.Printf("%.2f km for %s (%s)\n",
//	    quote.DistanceKm, quote.TotalFee, quote.ZoneName)
type CalculateDeliveryFeeQuery struct { //nolint:recvcheck //using for validation
	pickupLocation  kernel.Coordinate
	dropoffLocation kernel.Coordinate
	distanceKm      float64
	fromDistance    bool

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryFeeQuery creates a fee quote query.
// Both coordinates must be constructed; range checks already happened in
// NewCoordinate.
func NewCalculateDeliveryFeeQuery(pickupLocation, dropoffLocation kernel.Coordinate) (CalculateDeliveryFeeQuery, error) {
	query := CalculateDeliveryFeeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupLocation.Validate(),
		dropoffLocation.Validate(),
	); err != nil {
		return CalculateDeliveryFeeQuery{}, err
	}

	query.pickupLocation = pickupLocation
	query.dropoffLocation = dropoffLocation
	return query, nil
}

// NewCalculateDeliveryFeeQueryFromDistance creates a fee quote query for a
// distance the caller already measured, in kilometers. Used by checkout flows
// that carry the distance from an earlier quote instead of the raw
// coordinates.
func NewCalculateDeliveryFeeQueryFromDistance(distanceKm float64) (CalculateDeliveryFeeQuery, error) {
	if distanceKm < 0 {
		return CalculateDeliveryFeeQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}

	return CalculateDeliveryFeeQuery{
		distanceKm:   distanceKm,
		fromDistance: true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateDeliveryFeeQueryIsNotConstructed if validation fails.
func (q CalculateDeliveryFeeQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDeliveryFeeQueryIsNotConstructed)
}

// PickupLocation returns the store-side coordinate.
func (q CalculateDeliveryFeeQuery) PickupLocation() kernel.Coordinate {
	return q.pickupLocation
}

// DropoffLocation returns the customer-side coordinate.
func (q CalculateDeliveryFeeQuery) DropoffLocation() kernel.Coordinate {
	return q.dropoffLocation
}

// FromDistance reports whether the caller supplied the distance directly
// instead of a coordinate pair.
func (q CalculateDeliveryFeeQuery) FromDistance() bool {
	return q.fromDistance
}

// DistanceKm returns the caller-supplied distance. Only meaningful when
// FromDistance reports true.
func (q CalculateDeliveryFeeQuery) DistanceKm() float64 {
	return q.distanceKm
}

// CalculateDeliveryFeeQueryResponse is the complete quote for one trip.
// ZoneName is empty and IsFallback true when no zone covered the distance and
// the flat default fee applied.
type CalculateDeliveryFeeQueryResponse struct {
	DistanceKm       float64
	BaseFee          decimal.Decimal
	DistanceFee      decimal.Decimal
	TotalFee         decimal.Decimal
	ZoneName         string
	IsFallback       bool
	EstimatedMinutes int
}
