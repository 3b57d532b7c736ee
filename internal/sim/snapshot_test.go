package sim

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSnapshotHasNoSideEffects(t *testing.T) {
	s := newPlaying(t, flatLayout())
	s.SetMoveIntent(1)
	s.Advance(200)

	a := s.Snapshot()
	b := s.Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Error("consecutive snapshots differ")
	}

	a.Obstacles[0].Label = "mutated"
	a.Player.Position.X = 1000
	if got := s.Snapshot(); got.Obstacles[0].Label != "ground" || got.Player.Position.X == 1000 {
		t.Error("editing a snapshot leaked into the simulation")
	}
}

func TestSnapshotFields(t *testing.T) {
	s := newPlaying(t, flatLayout(NewObstacle("step", mgl64.Vec3{5, 0.5, 5}, mgl64.Vec3{2, 1, 2})))
	snap := s.Snapshot()

	if snap.CoordinateSystem != CoordinateSystem {
		t.Error("snapshot should describe the coordinate system")
	}
	if snap.Arena != "flat" || snap.Mode != ModePlaying || snap.Paused {
		t.Errorf("arena/mode/paused = %s/%s/%v", snap.Arena, snap.Mode, snap.Paused)
	}
	if len(snap.Obstacles) != 2 {
		t.Fatalf("obstacles = %d, expected 2", len(snap.Obstacles))
	}
	step := snap.Obstacles[1]
	if step.Min != (Vector{4, 0, 4}) || step.Max != (Vector{6, 1, 6}) {
		t.Errorf("step bounds = %+v..%+v, expected {4 0 4}..{6 1 6}", step.Min, step.Max)
	}
	if snap.Player.Size != (Vector{1, 1, 1}) {
		t.Errorf("player size = %+v, expected unit cube", snap.Player.Size)
	}
	if !snap.Player.Grounded {
		t.Error("player should start grounded")
	}
	if snap.Enemy.PatrolRange != [2]float64{7, 9} {
		t.Errorf("patrol range = %v, expected [7 9]", snap.Enemy.PatrolRange)
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	s := newPlaying(t, flatLayout())
	data, err := s.Snapshot().JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("snapshot JSON does not decode: %v", err)
	}
	for _, key := range []string{"coordinateSystem", "arena", "mode", "paused", "score", "elapsedSec", "tick", "player", "enemy", "goal", "obstacles", "camera"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
	if _, ok := decoded["cause"]; ok {
		t.Error("cause should be omitted while playing")
	}
	player, _ := decoded["player"].(map[string]any)
	if _, ok := player["onGround"]; !ok {
		t.Error("player JSON missing onGround")
	}
}

func TestRounded(t *testing.T) {
	snap := Snapshot{
		ElapsedSec: 1.23456,
		Player: PlayerSnapshot{
			Position: Vector{X: 0.123456, Y: -0.0001, Z: 2.5},
		},
		Obstacles: []ObstacleSnapshot{{Label: "a", Min: Vector{X: 1.00001}}},
	}

	r := snap.Rounded(2)
	if r.ElapsedSec != 1.23 {
		t.Errorf("elapsed = %g, expected 1.23", r.ElapsedSec)
	}
	if r.Player.Position.X != 0.12 || r.Player.Position.Z != 2.5 {
		t.Errorf("position = %+v", r.Player.Position)
	}
	if y := r.Player.Position.Y; y != 0 || math.Signbit(y) {
		t.Errorf("y = %g, expected positive zero", y)
	}
	if r.Obstacles[0].Min.X != 1 {
		t.Errorf("obstacle min x = %g, expected 1", r.Obstacles[0].Min.X)
	}
	if snap.Obstacles[0].Min.X != 1.00001 {
		t.Error("Rounded modified its receiver's obstacles")
	}
}

func TestDigestTracksState(t *testing.T) {
	s := newPlaying(t, flatLayout())
	first := s.Snapshot().Digest()
	if first == 0 {
		t.Fatal("digest should not be zero for a valid snapshot")
	}

	s.SetMoveIntent(1)
	s.Step(s.TickSeconds())
	if s.Snapshot().Digest() == first {
		t.Error("digest should change when state changes")
	}
}

func TestDigestSeparatesNonFiniteStates(t *testing.T) {
	s := newPlaying(t, flatLayout())
	a := s.Snapshot()
	a.Player.Velocity.Y = math.NaN()
	b := a
	b.Player.Position.X += 1

	if _, err := a.JSON(); err == nil {
		t.Fatal("a NaN snapshot should not encode as JSON")
	}
	if a.Digest() == b.Digest() {
		t.Error("different NaN-carrying states should not share a digest")
	}
	if a.Digest() != a.Digest() {
		t.Error("digest should be stable for the same state")
	}
	if a.Digest() == 0 {
		t.Error("digest should not collapse to zero")
	}
}
