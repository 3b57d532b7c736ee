package sim

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a JSON-friendly 3D vector.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func vec(v mgl64.Vec3) Vector {
	return Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Facing is the horizontal facing direction.
type Facing struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// PlayerSnapshot is the player part of a Snapshot.
type PlayerSnapshot struct {
	Position    Vector `json:"position"`
	Velocity    Vector `json:"velocity"`
	Facing      Facing `json:"facing"`
	Grounded    bool   `json:"onGround"`
	HalfExtents Vector `json:"halfExtents"`
	Size        Vector `json:"size"`
}

// EnemySnapshot is the enemy part of a Snapshot.
type EnemySnapshot struct {
	Position    Vector     `json:"position"`
	HalfExtents Vector     `json:"halfExtents"`
	PatrolRange [2]float64 `json:"patrolRange"`
	Direction   int        `json:"direction"`
}

// GoalSnapshot is the goal part of a Snapshot.
type GoalSnapshot struct {
	Position    Vector `json:"position"`
	HalfExtents Vector `json:"halfExtents"`
}

// ObstacleSnapshot is one obstacle in a Snapshot.
type ObstacleSnapshot struct {
	Label string `json:"label"`
	Min   Vector `json:"min"`
	Max   Vector `json:"max"`
}

// CameraSnapshot is the camera part of a Snapshot.
type CameraSnapshot struct {
	Position   Vector `json:"position"`
	LookTarget Vector `json:"lookTarget"`
}

// Snapshot is a plain, self-contained record of the full session state.
// It shares no memory with the Simulation that produced it.
type Snapshot struct {
	CoordinateSystem string             `json:"coordinateSystem"`
	Arena            string             `json:"arena"`
	Mode             Mode               `json:"mode"`
	Paused           bool               `json:"paused"`
	Cause            Cause              `json:"cause,omitempty"`
	Score            int                `json:"score"`
	ElapsedSec       float64            `json:"elapsedSec"`
	Tick             uint64             `json:"tick"`
	Player           PlayerSnapshot     `json:"player"`
	Enemy            EnemySnapshot      `json:"enemy"`
	Goal             GoalSnapshot       `json:"goal"`
	Obstacles        []ObstacleSnapshot `json:"obstacles"`
	Camera           CameraSnapshot     `json:"camera"`
}

// Snapshot captures the current state. It has no side effects.
func (s *Simulation) Snapshot() Snapshot {
	p := s.player
	obstacles := make([]ObstacleSnapshot, 0, len(s.world.obstacles))
	for _, o := range s.world.obstacles {
		obstacles = append(obstacles, ObstacleSnapshot{Label: o.Label, Min: vec(o.Min), Max: vec(o.Max)})
	}

	return Snapshot{
		CoordinateSystem: CoordinateSystem,
		Arena:            s.layout.ID,
		Mode:             s.mode,
		Paused:           s.mode == ModePaused,
		Cause:            s.cause,
		Score:            s.score,
		ElapsedSec:       s.elapsed,
		Tick:             s.ticks,
		Player: PlayerSnapshot{
			Position:    vec(p.Position),
			Velocity:    vec(p.Velocity),
			Facing:      Facing{X: p.Facing.X(), Z: p.Facing.Z()},
			Grounded:    p.Grounded,
			HalfExtents: vec(p.Half),
			Size:        vec(p.Half.Mul(2)),
		},
		Enemy: EnemySnapshot{
			Position:    vec(s.enemy.Position),
			HalfExtents: vec(s.enemy.Half),
			PatrolRange: [2]float64{s.enemy.MinX, s.enemy.MaxX},
			Direction:   s.enemy.Direction,
		},
		Goal: GoalSnapshot{
			Position:    vec(s.goal.Position),
			HalfExtents: vec(s.goal.Half),
		},
		Obstacles: obstacles,
		Camera: CameraSnapshot{
			Position:   vec(s.camera.Position),
			LookTarget: vec(s.camera.LookTarget),
		},
	}
}

// Rounded returns a copy with every float rounded to the given number of
// decimal places, for display and text dumps.
func (snap Snapshot) Rounded(places int) Snapshot {
	pow := math.Pow(10, float64(places))
	r := func(f float64) float64 {
		v := math.Round(f*pow) / pow
		if v == 0 {
			return 0 // drop negative zero
		}
		return v
	}
	rv := func(v Vector) Vector {
		return Vector{X: r(v.X), Y: r(v.Y), Z: r(v.Z)}
	}

	out := snap
	out.ElapsedSec = r(snap.ElapsedSec)
	out.Player.Position = rv(snap.Player.Position)
	out.Player.Velocity = rv(snap.Player.Velocity)
	out.Player.Facing = Facing{X: r(snap.Player.Facing.X), Z: r(snap.Player.Facing.Z)}
	out.Player.HalfExtents = rv(snap.Player.HalfExtents)
	out.Player.Size = rv(snap.Player.Size)
	out.Enemy.Position = rv(snap.Enemy.Position)
	out.Enemy.HalfExtents = rv(snap.Enemy.HalfExtents)
	out.Enemy.PatrolRange = [2]float64{r(snap.Enemy.PatrolRange[0]), r(snap.Enemy.PatrolRange[1])}
	out.Goal.Position = rv(snap.Goal.Position)
	out.Goal.HalfExtents = rv(snap.Goal.HalfExtents)
	out.Camera.Position = rv(snap.Camera.Position)
	out.Camera.LookTarget = rv(snap.Camera.LookTarget)
	out.Obstacles = make([]ObstacleSnapshot, len(snap.Obstacles))
	for i, o := range snap.Obstacles {
		out.Obstacles[i] = ObstacleSnapshot{Label: o.Label, Min: rv(o.Min), Max: rv(o.Max)}
	}
	return out
}

// JSON encodes the snapshot with two-space indentation.
func (snap Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Digest hashes the canonical JSON encoding. Two runs with identical inputs
// produce identical digests.
func (snap Snapshot) Digest() uint64 {
	data, err := json.Marshal(snap)
	if err != nil {
		// Non-finite floats have no JSON form; hash the Go syntax instead so
		// distinct states still hash apart.
		return xxhash.Sum64String(fmt.Sprintf("%#v", snap))
	}
	return xxhash.Sum64(data)
}
