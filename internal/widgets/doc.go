// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay, gauge, buttons)
//
// Not allowed here:
// - key handling, selection state transitions, scope logic
package widgets
