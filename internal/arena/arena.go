// Package arena holds the built-in arena layouts. Importing it registers
// every arena with the registry.
package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/sim"
)

// Default is the arena used when none is named.
const Default = MeadowID

// cubeHalf returns equal half extents on every axis.
func cubeHalf(h float64) mgl64.Vec3 {
	return mgl64.Vec3{h, h, h}
}

// groundSlab is a 1 unit thick floor whose top face sits at y=0.
func groundSlab(width, depth float64) sim.Obstacle {
	return sim.NewObstacle("ground", mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{width, 1, depth})
}
