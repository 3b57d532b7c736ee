package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/sim"
)

// MeadowID is the registry ID of the three-step meadow.
const MeadowID = "meadow"

func init() {
	registry.Register(MeadowID, Meadow)
}

// Meadow is a grass slab with three rising steps. The goal floats above the
// tallest step and the enemy patrols the low step near spawn.
func Meadow() sim.Layout {
	return sim.Layout{
		ID:    MeadowID,
		Title: "Meadow Steps",
		Obstacles: []sim.Obstacle{
			groundSlab(20, 20),
			sim.NewObstacle("stepA", mgl64.Vec3{-2.8, 0.45, -2}, mgl64.Vec3{3.2, 0.9, 3.2}),
			sim.NewObstacle("stepB", mgl64.Vec3{1.2, 0.9, 1}, mgl64.Vec3{3, 1.8, 3}),
			sim.NewObstacle("stepC", mgl64.Vec3{4.8, 1.3, 3.6}, mgl64.Vec3{2.4, 2.6, 2.4}),
		},
		Spawn:  mgl64.Vec3{-7, 0.5, -7},
		Facing: sim.DefaultFacing,
		Enemy: sim.EnemySpawn{
			Position:  mgl64.Vec3{-4.2, 1.45, -2},
			Half:      cubeHalf(0.55),
			MinX:      -4.6,
			MaxX:      -1.0,
			Speed:     1.8,
			Direction: 1,
		},
		Goal: sim.Goal{
			Position: mgl64.Vec3{4.8, 3.15, 3.6},
			Half:     cubeHalf(0.35),
		},
	}
}
