// Package screens contains overlay flows rendered on top of the panel.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (file picker, help, command palette)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - selection rules; screens only produce candidate batches
package screens
