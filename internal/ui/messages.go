// Package ui provides terminal user interface components for the daylist app.
// This file defines message types for the Bubble Tea event loop. Checklist
// mutations run synchronously inside Update, so messages exist only for the
// genuinely asynchronous pieces: the clock tick and the CSV export, which
// writes a copied snapshot off the event loop.
package ui

import "time"

// tickMsg is sent once a second for status expiry and the periodic
// rollover check.
type tickMsg time.Time

// exportDoneMsg is sent when a CSV export finishes.
type exportDoneMsg struct {
	path string
	days int
	err  error
}
