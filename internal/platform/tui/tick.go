// Package tui hosts games in a Bubble Tea program. It owns the frame clock,
// maps keys to actions and turns screen buffers into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a config carries no frame rate.
const defaultTickRate = 30

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickCmd returns a command that delivers the next TickMsg at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
