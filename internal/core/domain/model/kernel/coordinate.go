package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Geographic bounds for valid WGS-84 coordinates, in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// EarthRadiusKm is the mean Earth radius used by the haversine distance
// calculation.
const EarthRadiusKm = 6371.0

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate. Coordinates must be created via the
// NewCoordinate constructor so that bounds validation cannot be bypassed.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
// It is the value type every distance and fee computation starts from, so the
// constructor fails fast on out-of-range input instead of letting NaN
// propagate through the trigonometry downstream.
//
// The zero value is invalid and fails Validate; use NewCoordinate.
//
// Example:
//
//	pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate with validated bounds.
// Latitude must be within [MinLatitude, MaxLatitude] and longitude within
// [MinLongitude, MaxLongitude]; an errs.ValueIsOutOfRangeError is returned
// otherwise.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	coordinate := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coordinate.setLatitude(latitude),
		coordinate.setLongitude(longitude),
	); err != nil {
		return Coordinate{}, err
	}

	return coordinate, nil
}

// Validate checks that the Coordinate was created through NewCoordinate.
// The zero value fails with ErrCoordinateIsNotConstructed.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer, formatting as "Coordinate(lat,lon)".
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinates for exact equality.
// Both coordinates must be properly constructed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// DistanceTo calculates the great-circle distance to another coordinate using
// the haversine formula on a sphere of radius EarthRadiusKm.
//
// The result is in kilometers, rounded to 2 decimal places to match the
// precision of persisted distances. The operation is symmetric and returns 0
// for identical points. Both coordinates must be properly constructed.
func (c Coordinate) DistanceTo(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := radians(other.latitude - c.latitude)
	dLon := radians(other.longitude - c.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(c.latitude))*math.Cos(radians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	distance := 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(distance*100) / 100, nil
}

// setLatitude sets the latitude with bounds validation.
// Pointer receiver is intentional: private setters enable self-encapsulated
// validation during construction while the public API stays value-based.
func (c *Coordinate) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with bounds validation.
func (c *Coordinate) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

func radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
