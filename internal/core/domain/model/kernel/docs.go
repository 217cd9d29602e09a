// Package kernel provides core domain primitives shared across the
// fulfillment domain model.
//
// The package includes:
//   - Coordinate: a validated WGS-84 latitude/longitude value object with
//     great-circle (haversine) distance calculation
//   - UUID: a value object for entity and aggregate identity
//
// Both types are immutable, constructor-guarded, and safe for concurrent use.
// Distance is the geometric input to delivery fee pricing, so Coordinate
// rejects out-of-range input at construction rather than letting malformed
// degrees reach the trigonometry.
package kernel
