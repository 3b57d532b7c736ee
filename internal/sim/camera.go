package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/config"
)

var up = mgl64.Vec3{0, 1, 0}

// Camera is a third-person follow rig. It has no effect on gameplay.
type Camera struct {
	Position   mgl64.Vec3
	LookTarget mgl64.Vec3
}

// Desired returns where the rig wants to be for a target pose:
// behind and above the target, offset sideways along the shoulder vector, looking ahead.
func Desired(cfg config.CameraConfig, target, facing mgl64.Vec3) (position, look mgl64.Vec3) {
	f := horizontal(facing)
	shoulder := mgl64.Vec3{f.Z(), 0, -f.X()}

	position = target.
		Sub(f.Mul(cfg.FollowDistance)).
		Add(shoulder.Mul(cfg.ShoulderOffset)).
		Add(up.Mul(cfg.FollowHeight))
	look = target.
		Add(f.Mul(cfg.LookAhead)).
		Add(up.Mul(cfg.LookHeight))
	return position, look
}

// Follow moves the camera toward the desired pose. With snap it jumps there,
// otherwise position and look target each close a fixed fraction of the gap.
func (c *Camera) Follow(cfg config.CameraConfig, target, facing mgl64.Vec3, snap bool) {
	position, look := Desired(cfg, target, facing)
	if snap {
		c.Position = position
		c.LookTarget = look
		return
	}
	c.Position = lerp(c.Position, position, cfg.FollowLerp)
	c.LookTarget = lerp(c.LookTarget, look, cfg.LookLerp)
}

func lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}
