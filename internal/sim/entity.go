package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/core"
)

// Player cube dimensions.
var PlayerHalf = mgl64.Vec3{0.5, 0.5, 0.5}

// DefaultFacing is used whenever a facing vector degenerates to zero length.
var DefaultFacing = mgl64.Vec3{0.72, 0, 0.69}.Normalize()

// minFacingLenSq is the squared length below which a facing vector counts as degenerate.
const minFacingLenSq = 1e-4

// Player is the controllable cube.
type Player struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Half     mgl64.Vec3
	Facing   mgl64.Vec3 // Horizontal unit vector, Y always 0
	Grounded bool
}

// Box returns the player bounds.
func (p Player) Box() core.Box {
	return core.BoxAround(p.Position, p.Half)
}

// Enemy is the patrolling hazard. It only moves along X.
type Enemy struct {
	Position  mgl64.Vec3
	Half      mgl64.Vec3
	MinX      float64
	MaxX      float64
	Speed     float64
	Direction int // +1 or -1
}

// Box returns the enemy bounds.
func (e Enemy) Box() core.Box {
	return core.BoxAround(e.Position, e.Half)
}

// patrol advances the enemy by dt, clamping and flipping direction at the bounds.
func (e *Enemy) patrol(dt float64) {
	e.Position[0] += e.Speed * float64(e.Direction) * dt
	if e.Position[0] >= e.MaxX {
		e.Position[0] = e.MaxX
		e.Direction = -1
	} else if e.Position[0] <= e.MinX {
		e.Position[0] = e.MinX
		e.Direction = 1
	}
}

// Goal is the win volume.
type Goal struct {
	Position mgl64.Vec3
	Half     mgl64.Vec3
}

// Box returns the goal bounds.
func (g Goal) Box() core.Box {
	return core.BoxAround(g.Position, g.Half)
}

// horizontal projects v onto the XZ plane and normalizes it,
// falling back to DefaultFacing when the result is degenerate.
func horizontal(v mgl64.Vec3) mgl64.Vec3 {
	h := mgl64.Vec3{v.X(), 0, v.Z()}
	lenSq := h.Dot(h)
	if lenSq < minFacingLenSq || math.IsNaN(lenSq) || math.IsInf(lenSq, 0) {
		return DefaultFacing
	}
	return h.Mul(1 / math.Sqrt(lenSq))
}

// newEnemy builds a patrol enemy from its spawn description, repairing
// inverted bounds, negative speed and out-of-range spawn positions.
func newEnemy(spawn EnemySpawn, speedScale float64) Enemy {
	e := Enemy{
		Position:  spawn.Position,
		Half:      spawn.Half,
		MinX:      math.Min(spawn.MinX, spawn.MaxX),
		MaxX:      math.Max(spawn.MinX, spawn.MaxX),
		Speed:     math.Max(0, spawn.Speed*speedScale),
		Direction: 1,
	}
	if spawn.Direction < 0 {
		e.Direction = -1
	}
	e.Position[0] = core.ClampF(e.Position[0], e.MinX, e.MaxX)
	return e
}
