package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/core"
)

// Mode is the run state.
type Mode string

const (
	ModeStart   Mode = "start"
	ModePlaying Mode = "playing"
	ModePaused  Mode = "paused"
	ModeWon     Mode = "won"
	ModeLost    Mode = "lost"
)

// Terminal reports whether the run has ended.
func (m Mode) Terminal() bool {
	return m == ModeWon || m == ModeLost
}

// Cause explains why a run was lost.
type Cause string

const (
	CauseNone  Cause = ""
	CauseEnemy Cause = "enemy"
	CauseFall  Cause = "fall"
)

// EventKind identifies a transition produced by a tick.
type EventKind string

const (
	EventWon  EventKind = "won"
	EventLost EventKind = "lost"
)

// Event records a Playing -> Won/Lost transition.
type Event struct {
	Kind    EventKind
	Cause   Cause
	Tick    uint64
	Elapsed float64
	Score   int
}

// Start begins a run from the Start screen. Ignored in any other mode.
func (s *Simulation) Start() bool {
	if s.mode != ModeStart {
		return false
	}
	s.begin()
	return true
}

// Restart fully resets and begins a new run.
// Accepted while Playing, Paused, Won or Lost; ignored on the Start screen.
func (s *Simulation) Restart() bool {
	if s.mode == ModeStart {
		return false
	}
	s.begin()
	return true
}

// TogglePause switches between Playing and Paused. Ignored in any other mode.
func (s *Simulation) TogglePause() bool {
	switch s.mode {
	case ModePlaying:
		s.mode = ModePaused
	case ModePaused:
		s.mode = ModePlaying
	default:
		return false
	}
	return true
}

// Reset returns the session to the Start screen with spawn values.
func (s *Simulation) Reset() {
	s.respawn()
	s.mode = ModeStart
}

// SetTurnIntent sets the held turn direction: -1 left, 0 none, 1 right.
// Values are reduced to their sign.
func (s *Simulation) SetTurnIntent(dir int) {
	s.intents.Turn = core.Sign(dir)
}

// SetMoveIntent sets the held move direction: -1 back, 0 none, 1 forward.
// Values are reduced to their sign.
func (s *Simulation) SetMoveIntent(dir int) {
	s.intents.Move = core.Sign(dir)
}

// QueueJump queues a jump for the next tick. Ignored unless Playing.
// The queued jump is consumed by that tick whether or not it applied.
func (s *Simulation) QueueJump() bool {
	if s.mode != ModePlaying {
		return false
	}
	s.intents.Jump = true
	return true
}

func (s *Simulation) begin() {
	s.respawn()
	s.mode = ModePlaying
}

// respawn puts every entity back at its spawn values and snaps the camera.
func (s *Simulation) respawn() {
	l := s.layout
	s.player = Player{
		Position: l.Spawn,
		Half:     PlayerHalf,
		Facing:   horizontal(l.Facing),
		Grounded: true,
	}
	s.enemy = newEnemy(l.Enemy, s.cfg.Enemy.SpeedScale)
	s.goal = l.Goal
	s.elapsed = 0
	s.score = 0
	s.ticks = 0
	s.cause = CauseNone
	s.intents = core.Intents{}
	s.camera.Follow(s.cfg.Camera, s.player.Position, s.player.Facing, true)
}

func (s *Simulation) lose(cause Cause) Event {
	s.player.Velocity = mgl64.Vec3{}
	s.mode = ModeLost
	s.cause = cause
	return Event{Kind: EventLost, Cause: cause, Tick: s.ticks, Elapsed: s.elapsed}
}

func (s *Simulation) win() Event {
	s.player.Velocity = mgl64.Vec3{}
	s.score = Score(s.cfg.Scoring.Base, s.cfg.Scoring.Min, s.cfg.Scoring.DecayRate, s.elapsed)
	s.mode = ModeWon
	return Event{Kind: EventWon, Tick: s.ticks, Elapsed: s.elapsed, Score: s.score}
}

// Score returns max(min, round(base - elapsed*decay)).
func Score(base, minScore int, decay, elapsed float64) int {
	raw := math.Round(float64(base) - elapsed*decay)
	if math.IsNaN(raw) || raw < float64(minScore) {
		return minScore
	}
	return int(raw)
}
