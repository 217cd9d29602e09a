// Package pricing implements distance-based delivery fee resolution.
//
// A pricing schedule is an ordered list of ZoneTier bands, each covering an
// inclusive distance range with a base fee and a per-kilometer rate. Resolve
// selects the applicable tier for a distance and produces a FeeBreakdown;
// distances no tier covers degrade to a flat default fee so checkout can
// never be blocked by a configuration gap.
//
// All monetary amounts use github.com/shopspring/decimal and are rounded
// half-up to 2 decimal places, matching the decimal(10,2) schedule columns.
// The schedule is always passed in explicitly — there is no package-level
// configuration — so per-region schedules and tests need no global state.
package pricing
