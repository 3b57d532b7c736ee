package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/sim"
)

// PracticeID is the registry ID of the short warm-up arena.
const PracticeID = "practice"

func init() {
	registry.Register(PracticeID, Practice)
}

// Practice has one low step with the goal resting on it a few units from
// spawn. The enemy patrols the opposite corner.
func Practice() sim.Layout {
	return sim.Layout{
		ID:    PracticeID,
		Title: "Practice Yard",
		Obstacles: []sim.Obstacle{
			groundSlab(12, 12),
			sim.NewObstacle("ledge", mgl64.Vec3{1.5, 0.3, 1.5}, mgl64.Vec3{2, 0.6, 2}),
		},
		Spawn:  mgl64.Vec3{-3, 0.5, -3},
		Facing: mgl64.Vec3{1, 0, 1},
		Enemy: sim.EnemySpawn{
			Position:  mgl64.Vec3{3, 0.55, -4},
			Half:      cubeHalf(0.55),
			MinX:      2,
			MaxX:      5,
			Speed:     1.2,
			Direction: 1,
		},
		Goal: sim.Goal{
			Position: mgl64.Vec3{1.5, 0.95, 1.5},
			Half:     cubeHalf(0.35),
		},
	}
}
