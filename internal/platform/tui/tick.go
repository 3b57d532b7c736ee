// Package tui provides the Bubble Tea integration for cuberun.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. Gen identifies the game model that
// scheduled it, so a stale tick from a closed game cannot start a second loop.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
