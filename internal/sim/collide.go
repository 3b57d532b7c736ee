package sim

import "math"

// Axis indexes into mgl64.Vec3.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// resolveAxis moves the player along one axis by velocity*dt and pushes it back
// out of every obstacle it now overlaps, to the face it approached from.
// Reports whether any obstacle was hit.
func (s *Simulation) resolveAxis(axis Axis, dt float64) bool {
	p := &s.player
	delta := p.Velocity[axis] * dt
	if delta == 0 || math.IsNaN(delta) {
		return false
	}

	p.Position[axis] += delta
	collided := false

	for _, o := range s.world.obstacles {
		if !p.Box().Overlaps(o.Box()) {
			continue
		}
		collided = true
		if delta > 0 {
			p.Position[axis] = o.Min[axis] - p.Half[axis]
		} else {
			p.Position[axis] = o.Max[axis] + p.Half[axis]
		}
	}

	return collided
}

// resolveVertical runs the Y pass and applies the landing contract:
// hitting something while falling or resting grounds the player,
// hitting a ceiling only stops the rise.
func (s *Simulation) resolveVertical(dt float64) {
	p := &s.player
	if !s.resolveAxis(AxisY, dt) {
		p.Grounded = false
		return
	}
	if p.Velocity[AxisY] <= 0 {
		p.Grounded = true
	}
	p.Velocity[AxisY] = 0
}
