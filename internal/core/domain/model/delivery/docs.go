// Package delivery provides the aggregate and state machine for the physical
// fulfillment leg of a marketplace order.
//
// The package includes:
//   - Delivery: the aggregate root owning lifecycle state, partner
//     assignment, quoted fee/distance, and per-state timestamps
//   - Status: a state machine enforcing
//     pending -> assigned -> picked_up -> in_transit -> delivered, with
//     cancellation possible only before pickup
//   - Notification: side-effect directives emitted on each transition for an
//     external notification dispatcher
//
// Key business rules:
//   - At most one partner ever holds a delivery; a lost accept race fails
//     with AlreadyAssignedError (surfaced to clients as "already taken")
//   - delivered and cancelled are terminal; records are kept as history
//   - assignedAt/pickedUpAt/deliveredAt are set exactly on entering the
//     corresponding state and never move backwards
//
// The aggregate performs no I/O: persistence and notification dispatch belong
// to the application layer and its ports.
package delivery
