// Package sim implements the deterministic fixed-timestep block platformer:
// axis-separated AABB collision, a patrol enemy, a goal volume, a run state
// machine and a smoothed follow camera.
//
// The package has no terminal, SSH or wall-clock dependencies. Callers drive it
// either through Driver, which turns variable frame time into fixed ticks, or
// through Advance, which steps a requested duration synchronously. Both end in Step.
package sim

import (
	"math"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

// MaxAdvanceTicks bounds a single Advance call (one hour at 60 ticks per second).
const MaxAdvanceTicks = 60 * 60 * 60

// Simulation owns all state for one session. It is not safe for concurrent use.
type Simulation struct {
	cfg    config.CubeConfig
	layout Layout
	world  World
	tick   float64

	player Player
	enemy  Enemy
	goal   Goal
	camera Camera

	mode    Mode
	cause   Cause
	elapsed float64
	score   int
	ticks   uint64
	intents core.Intents
}

// New builds a session for the layout, resting on the Start screen.
func New(cfg config.CubeConfig, layout Layout) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		layout: layout,
		world:  NewWorld(layout.Obstacles),
		tick:   cfg.Physics.TickSeconds(),
	}
	s.Reset()
	return s
}

// TickSeconds returns the fixed tick duration.
func (s *Simulation) TickSeconds() float64 {
	return s.tick
}

// Mode returns the current run mode.
func (s *Simulation) Mode() Mode {
	return s.mode
}

// Layout returns the layout this session was built from.
func (s *Simulation) Layout() Layout {
	return s.layout
}

// Player returns a copy of the player state.
func (s *Simulation) Player() Player {
	return s.player
}

// Enemy returns a copy of the enemy state.
func (s *Simulation) Enemy() Enemy {
	return s.enemy
}

// Camera returns a copy of the camera state.
func (s *Simulation) Camera() Camera {
	return s.camera
}

// Intents returns the held input that the next tick will sample.
func (s *Simulation) Intents() core.Intents {
	return s.intents
}

// ApplyIntents copies sampled input into the held intent slots.
// A set Jump queues a jump using the same rules as QueueJump.
func (s *Simulation) ApplyIntents(in core.Intents) {
	s.SetTurnIntent(in.Turn)
	s.SetMoveIntent(in.Move)
	if in.Jump {
		s.QueueJump()
	}
}

// SnapCamera places the camera at its desired pose immediately,
// for viewport resizes.
func (s *Simulation) SnapCamera() {
	s.camera.Follow(s.cfg.Camera, s.player.Position, s.player.Facing, true)
}

// TicksFor converts a duration in milliseconds to whole fixed ticks,
// rounding to the nearest tick with a minimum of one.
func (s *Simulation) TicksFor(durationMs float64) int {
	if math.IsNaN(durationMs) || math.IsInf(durationMs, 0) {
		return 1
	}
	n := math.Round(durationMs / (s.tick * 1000))
	if n < 1 {
		return 1
	}
	if n > MaxAdvanceTicks {
		return MaxAdvanceTicks
	}
	return int(n)
}

// Advance steps the simulation synchronously for durationMs milliseconds of
// fixed ticks, independent of any frame timing. Ticks counts the ticks that
// integrated; stepping stops counting once the run leaves Playing.
func (s *Simulation) Advance(durationMs float64) StepResult {
	n := s.TicksFor(durationMs)
	result := StepResult{Mode: s.mode}
	for i := 0; i < n; i++ {
		r := s.Step(s.tick)
		result.Ticks += r.Ticks
		result.Events = append(result.Events, r.Events...)
		result.Mode = r.Mode
		if r.Mode != ModePlaying {
			break // Step is a no-op outside Playing
		}
	}
	return result
}
