// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, key registry and screen stack
// - the page loader commands that bridge catalog fetches into grid state
// - grid chrome policy (header, status, table columns, popover anchoring)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - grid state transitions (internal/grid owns those)
package core
