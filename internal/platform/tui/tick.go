// Package tui hosts the breakdown simulation in a Bubble Tea program.
// It owns the frame loop, key handling, rendering onto a cell buffer and
// the SSH server used for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDT caps the step handed to the simulation after a stall.
const maxFrameDT = 0.05

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds between two ticks, falling back to one
// nominal interval when there is no previous tick.
func frameDT(last, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if last.IsZero() || !now.After(last) {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(last).Seconds()
	if dt > maxFrameDT {
		dt = maxFrameDT
	}
	return dt
}
