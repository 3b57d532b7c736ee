package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/core"
)

// CoordinateSystem describes the world axes for snapshot consumers.
const CoordinateSystem = "Origin at arena center on the ground top plane, +x right, +y up, +z toward the far-right platform from spawn."

// Obstacle is a static, labelled axis-aligned box.
type Obstacle struct {
	Label string
	Min   mgl64.Vec3
	Max   mgl64.Vec3
}

// NewObstacle builds an obstacle from its center and full size.
func NewObstacle(label string, center, size mgl64.Vec3) Obstacle {
	b := core.BoxFromSize(center, size)
	return Obstacle{Label: label, Min: b.Min, Max: b.Max}
}

// Box returns the obstacle bounds.
func (o Obstacle) Box() core.Box {
	return core.Box{Min: o.Min, Max: o.Max}
}

// EnemySpawn describes the patrol enemy at the start of a run.
type EnemySpawn struct {
	Position  mgl64.Vec3
	Half      mgl64.Vec3
	MinX      float64
	MaxX      float64
	Speed     float64
	Direction int
}

// Layout is everything needed to build a session: static geometry plus spawn values.
type Layout struct {
	ID        string
	Title     string
	Obstacles []Obstacle
	Spawn     mgl64.Vec3 // Player center
	Facing    mgl64.Vec3 // Initial facing, projected and normalized on use
	Enemy     EnemySpawn
	Goal      Goal
}

// World is the immutable obstacle set for a session.
type World struct {
	obstacles []Obstacle
}

// NewWorld copies the obstacle list so later edits to the layout cannot leak in.
func NewWorld(obstacles []Obstacle) World {
	return World{obstacles: append([]Obstacle(nil), obstacles...)}
}
