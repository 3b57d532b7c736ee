package tui

import (
	"github.com/vovakirdan/cuberun/internal/core"
)

// DefaultHoldTicks bridges the gap between a key press and the terminal's
// auto-repeat, which starts after roughly a quarter second.
const DefaultHoldTicks = 18

// HeldInput emulates held keys on terminals that only report presses.
// Each press latches its axis for holdTicks ticks; repeats refresh the latch.
// It implements sim.InputSource.
type HeldInput struct {
	holdTicks int

	turn, turnLeft int
	move, moveLeft int
	jump           bool
}

// NewHeldInput creates a latch that holds each press for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{holdTicks: holdTicks}
}

// Press records a key press. Non-movement actions are ignored.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionForward:
		h.move, h.moveLeft = 1, h.holdTicks
	case core.ActionBack:
		h.move, h.moveLeft = -1, h.holdTicks
	case core.ActionTurnLeft:
		h.turn, h.turnLeft = -1, h.holdTicks
	case core.ActionTurnRight:
		h.turn, h.turnLeft = 1, h.holdTicks
	case core.ActionJump:
		h.jump = true
	}
}

// Release drops every latched key.
func (h *HeldInput) Release() {
	*h = HeldInput{holdTicks: h.holdTicks}
}

// Sample returns the intents for one tick and ages the latches.
func (h *HeldInput) Sample() core.Intents {
	in := core.Intents{Jump: h.jump}
	h.jump = false

	if h.turnLeft > 0 {
		in.Turn = h.turn
		h.turnLeft--
	}
	if h.moveLeft > 0 {
		in.Move = h.move
		h.moveLeft--
	}
	return in
}
