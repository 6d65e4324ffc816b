// Package tui provides the Bubble Tea integration for ghostbird.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkoval/ghostbird/internal/sim"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock period matching the simulation quantum.
// It is not configurable: the physics constants are tuned to it.
var tickInterval = time.Duration(sim.TickSeconds * float64(time.Second))

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
