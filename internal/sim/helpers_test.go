package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/config"
)

const eps = 1e-9

// flatLayout is a 20x20 ground slab with the enemy parked in one corner and the
// goal in another, far enough from spawn that neither interferes.
func flatLayout(extra ...Obstacle) Layout {
	obstacles := []Obstacle{
		NewObstacle("ground", mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20}),
	}
	return Layout{
		ID:        "flat",
		Title:     "Flat",
		Obstacles: append(obstacles, extra...),
		Spawn:     mgl64.Vec3{0, 0.5, 0},
		Facing:    mgl64.Vec3{1, 0, 0},
		Enemy: EnemySpawn{
			Position:  mgl64.Vec3{8, 0.55, 8},
			Half:      mgl64.Vec3{0.55, 0.55, 0.55},
			MinX:      7,
			MaxX:      9,
			Speed:     0,
			Direction: 1,
		},
		Goal: Goal{
			Position: mgl64.Vec3{-8, 0.35, 8},
			Half:     mgl64.Vec3{0.35, 0.35, 0.35},
		},
	}
}

func newPlaying(t *testing.T, layout Layout) *Simulation {
	t.Helper()
	s := New(config.DefaultCubeConfig(), layout)
	if !s.Start() {
		t.Fatal("Start() should be accepted on the Start screen")
	}
	return s
}

func tickMs(s *Simulation) float64 {
	return s.TickSeconds() * 1000
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.9f, expected %.9f (tol=%g)", field, got, want, tol)
	}
}
