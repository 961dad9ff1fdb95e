// Package tui provides the Bubble Tea integration for the crossing game.
// It handles the terminal UI loop, input mapping, scoreboard and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the model that scheduled it, so ticks still queued
// for a closed game never drive the next one.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickInterval returns the wall time between ticks. Non-positive rates fall back to 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
