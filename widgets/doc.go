// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, checkboxes, popover overlay compositor)
//
// Not allowed here:
// - key handling, grid state transitions, fetch or selection logic
package widgets
