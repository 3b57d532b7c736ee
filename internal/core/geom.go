// Package core provides fundamental types and utilities for cuberun.
// It contains no terminal dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// It is the only collision primitive used by the simulation.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAround builds a box from a center point and half-extents.
func BoxAround(center, half mgl64.Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// BoxFromSize builds a box from a center point and full size.
func BoxFromSize(center, size mgl64.Vec3) Box {
	return BoxAround(center, size.Mul(0.5))
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extents of the box.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether two boxes share interior volume.
// Inequalities are strict: faces that merely touch do not overlap.
func (b Box) Overlaps(other Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] <= other.Min[i] || b.Min[i] >= other.Max[i] {
			return false
		}
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
