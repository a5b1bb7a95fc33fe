// Package core is the application shell around a single body.
//
// Owns:
// - the Bubble Tea model, screen stack and message routing
// - key and command registries
// - the picker state machine shared by modal screens
// - header, status bar and footer chrome
//
// Bodies and screens own their own key handling once core routes a key to
// them. Selection rules live in internal/selection.
package core
