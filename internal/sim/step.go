package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StepResult is returned by Step and Advance.
type StepResult struct {
	Mode   Mode    // Mode after the last tick
	Ticks  int     // Ticks that actually integrated
	Events []Event // Transitions that happened, in order
}

// Step advances the simulation by one tick of dt seconds.
// It is a no-op unless the run is Playing; non-positive or non-finite dt is skipped.
// Held intents are sampled once, before anything moves.
func (s *Simulation) Step(dt float64) StepResult {
	if s.mode != ModePlaying || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return StepResult{Mode: s.mode}
	}

	in := s.intents
	s.intents.Jump = false

	s.ticks++
	s.elapsed += dt

	phys := s.cfg.Physics
	p := &s.player

	if in.Turn != 0 {
		p.Facing = rotateY(p.Facing, float64(in.Turn)*phys.TurnSpeed*dt)
	}

	if in.Move != 0 {
		speed := phys.MoveSpeed
		if in.Move < 0 {
			speed *= phys.ReverseScale
		}
		p.Velocity[0] = p.Facing.X() * speed * float64(in.Move)
		p.Velocity[2] = p.Facing.Z() * speed * float64(in.Move)
	} else {
		p.Velocity[0] = 0
		p.Velocity[2] = 0
	}

	p.Velocity[1] -= phys.Gravity * dt

	if in.Jump && p.Grounded {
		p.Velocity[1] = phys.JumpVelocity
		p.Grounded = false
	}

	// Horizontal first so a wall push cannot masquerade as a landing
	s.resolveAxis(AxisX, dt)
	s.resolveAxis(AxisZ, dt)
	s.resolveVertical(dt)

	var events []Event
	if p.Position.Y() < phys.DeathAltitude {
		events = append(events, s.lose(CauseFall))
	}

	if s.mode == ModePlaying {
		s.enemy.patrol(dt)
		if s.enemy.Box().Overlaps(p.Box()) {
			events = append(events, s.lose(CauseEnemy))
		}
	}

	if s.mode == ModePlaying && s.goal.Box().Overlaps(p.Box()) {
		events = append(events, s.win())
	}

	s.camera.Follow(s.cfg.Camera, p.Position, p.Facing, false)

	return StepResult{Mode: s.mode, Ticks: 1, Events: events}
}

// rotateY turns a facing vector by angle radians about the vertical axis
// and renormalizes it.
func rotateY(facing mgl64.Vec3, angle float64) mgl64.Vec3 {
	sin, cos := math.Sincos(angle)
	return horizontal(mgl64.Vec3{
		facing.X()*cos - facing.Z()*sin,
		0,
		facing.X()*sin + facing.Z()*cos,
	})
}
