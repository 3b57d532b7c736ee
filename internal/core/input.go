package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow
	ActionBack             // S, Down arrow
	ActionTurnLeft         // A, Left arrow
	ActionTurnRight        // D, Right arrow
	ActionJump             // Space
	ActionStart            // Enter
	ActionRestart          // R
	ActionPause            // P
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents is the held input state sampled by the simulation at the start of a tick.
// Turn and Move are -1, 0 or 1; Jump is an edge that is consumed once applied.
type Intents struct {
	Turn int // -1 = left, 1 = right
	Move int // -1 = back, 1 = forward
	Jump bool
}
