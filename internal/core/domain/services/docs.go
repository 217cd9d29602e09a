// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteCalculator: A domain service producing a full delivery quote
//     (distance, fee breakdown, time estimate) from a pair of coordinates and
//     the active zone schedule
//
// Domain services coordinate between value objects and aggregates, implementing
// logic that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
