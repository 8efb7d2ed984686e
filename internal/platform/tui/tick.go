// Package tui provides the Bubble Tea integration for Lightline. It maps
// keys to engine actions, drives the engine tick, and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is the engine ticks per second used when none is given.
// Danger pacing in the balance config assumes this rate.
const DefaultTickRate = 10

// TickMsg is sent to trigger an engine tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
