package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRestingOnGroundIsStable(t *testing.T) {
	s := newPlaying(t, flatLayout())

	res := s.Advance(10 * tickMs(s))
	if res.Ticks != 10 {
		t.Fatalf("Advance ran %d ticks, expected 10", res.Ticks)
	}

	p := s.Player()
	approxEqual(t, p.Position.Y(), 0.5, eps, "position.y")
	approxEqual(t, p.Position.X(), 0, eps, "position.x")
	approxEqual(t, p.Position.Z(), 0, eps, "position.z")
	if !p.Grounded {
		t.Error("player should be grounded at rest")
	}
	if p.Velocity.Y() != 0 {
		t.Errorf("velocity.y = %g, expected 0 at rest", p.Velocity.Y())
	}
}

func TestWallStopsForwardMotion(t *testing.T) {
	wall := NewObstacle("wall", mgl64.Vec3{2, 0.5, 0}, mgl64.Vec3{2, 1, 2})
	s := newPlaying(t, flatLayout(wall))
	s.SetMoveIntent(1)

	for i := 0; i < 60; i++ {
		s.Step(s.TickSeconds())
		if s.Player().Box().Overlaps(wall.Box()) {
			t.Fatalf("tick %d: player overlaps wall at %v", i+1, s.Player().Position)
		}
	}

	approxEqual(t, s.Player().Position.X(), wall.Min.X()-PlayerHalf.X(), eps, "position.x")
	if s.Player().Velocity.X() <= 0 {
		t.Error("held forward intent should keep requesting +x velocity")
	}
}

func TestCornerClampsOnFirstOverlappingTick(t *testing.T) {
	block := NewObstacle("block", mgl64.Vec3{2, 0.5, 2}, mgl64.Vec3{2, 1, 2})
	layout := flatLayout(block)
	layout.Facing = mgl64.Vec3{1, 0, 1}
	s := newPlaying(t, layout)
	s.SetMoveIntent(1)

	perTick := s.cfg.Physics.MoveSpeed / mgl64.Vec2{1, 1}.Len() * s.TickSeconds()
	clampTick := 0
	for i := 1; i <= 120; i++ {
		s.Step(s.TickSeconds())
		p := s.Player()
		if p.Box().Overlaps(block.Box()) {
			t.Fatalf("tick %d: player tunnelled into block at %v", i, p.Position)
		}
		// Unobstructed the player would now be inside the corner
		free := float64(i) * perTick
		if clampTick == 0 && free+PlayerHalf.Z() > block.Min.Z() && free+PlayerHalf.X() > block.Min.X() {
			clampTick = i
			approxEqual(t, p.Position.Z(), block.Min.Z()-PlayerHalf.Z(), eps, "clamped position.z")
		}
	}
	if clampTick == 0 {
		t.Fatal("player never reached the corner")
	}

	// Sliding continues along the face that stopped it
	if s.Player().Position.X() <= block.Min.X() {
		t.Errorf("player should slide along the block face, x = %g", s.Player().Position.X())
	}
}

func TestWallPushDoesNotGround(t *testing.T) {
	// Player starts in the air against a wall; horizontal clamps must not set grounded
	wall := NewObstacle("wall", mgl64.Vec3{2, 3, 0}, mgl64.Vec3{2, 6, 2})
	layout := flatLayout(wall)
	layout.Spawn = mgl64.Vec3{0.5, 4, 0}
	s := newPlaying(t, layout)
	s.SetMoveIntent(1)

	s.Step(s.TickSeconds())

	p := s.Player()
	approxEqual(t, p.Position.X(), 0.5, eps, "position.x")
	if p.Grounded {
		t.Error("a horizontal wall hit must not ground the player")
	}
	if p.Velocity.Y() >= 0 {
		t.Errorf("velocity.y = %g, player should still be falling", p.Velocity.Y())
	}
}

func TestCeilingStopsRiseWithoutGrounding(t *testing.T) {
	ceiling := NewObstacle("ceiling", mgl64.Vec3{0, 2.1, 0}, mgl64.Vec3{4, 1, 4})
	s := newPlaying(t, flatLayout(ceiling))

	s.QueueJump()
	for i := 0; i < 6; i++ {
		s.Step(s.TickSeconds())
	}

	p := s.Player()
	approxEqual(t, p.Position.Y(), ceiling.Min.Y()-PlayerHalf.Y(), eps, "position.y")
	if p.Velocity.Y() != 0 {
		t.Errorf("velocity.y = %g, expected 0 after ceiling hit", p.Velocity.Y())
	}
	if p.Grounded {
		t.Error("hitting a ceiling must not ground the player")
	}

	s.Step(s.TickSeconds())
	if s.Player().Velocity.Y() >= 0 {
		t.Error("player should start falling after the ceiling hit")
	}
}

func TestZeroMotionReportsNoCollision(t *testing.T) {
	s := newPlaying(t, flatLayout())
	if s.resolveAxis(AxisX, s.TickSeconds()) {
		t.Error("resolveAxis with zero velocity should report no collision")
	}
}
