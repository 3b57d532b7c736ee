package registry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/sim"
)

func testLayout() sim.Layout {
	return sim.Layout{
		ID:    "registry-test",
		Title: "Registry Test",
		Obstacles: []sim.Obstacle{
			sim.NewObstacle("ground", mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{4, 1, 4}),
		},
		Spawn:  mgl64.Vec3{0, 0.5, 0},
		Facing: mgl64.Vec3{1, 0, 0},
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("registry-test", testLayout)

	if !Exists("registry-test") {
		t.Fatal("registered arena should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "registry-test" {
			found = true
			if info.Title != "Registry Test" || info.Obstacles != 1 {
				t.Errorf("info = %+v, expected title and one obstacle", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered arena")
	}

	s, err := Create("registry-test", config.DefaultCubeConfig())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if s.Mode() != sim.ModeStart {
		t.Errorf("new session mode = %s, expected start", s.Mode())
	}
}

func TestLayoutReturnsFreshCopies(t *testing.T) {
	if !Exists("registry-copy") {
		Register("registry-copy", testLayout)
	}

	a, _ := Layout("registry-copy")
	a.Obstacles[0].Label = "edited"
	b, _ := Layout("registry-copy")
	if b.Obstacles[0].Label != "ground" {
		t.Error("editing one layout leaked into the next")
	}
}

func TestUnknownArena(t *testing.T) {
	if Exists("nope") {
		t.Error("Exists should be false for an unknown arena")
	}
	if _, err := Create("nope", config.DefaultCubeConfig()); err == nil {
		t.Error("Create should fail for an unknown arena")
	}
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	if !Exists("registry-invalid") {
		Register("registry-invalid", testLayout)
	}

	cfg := config.DefaultCubeConfig()
	cfg.Physics.Gravity = math.NaN()
	if _, err := Create("registry-invalid", cfg); err == nil {
		t.Error("Create should reject a NaN gravity")
	}

	cfg = config.DefaultCubeConfig()
	cfg.Physics.MoveSpeed = -4
	if _, err := Create("registry-invalid", cfg); err == nil {
		t.Error("Create should reject a negative move speed")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("registry-dup", testLayout)
	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("registry-dup", testLayout)
}

func TestListSorted(t *testing.T) {
	for _, id := range []string{"registry-z", "registry-a"} {
		if !Exists(id) {
			Register(id, testLayout)
		}
	}
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}
