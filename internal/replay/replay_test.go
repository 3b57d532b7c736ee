package replay

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/vovakirdan/cuberun/internal/arena"
	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/sim"
)

func TestParseValidScript(t *testing.T) {
	s, err := Parse([]byte(`
arena: practice
difficulty: hard
steps:
  - cmd: start
  - turn: -1
  - move: 1
  - jump: true
  - advance_ms: 250
  - checkpoint: end
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Arena != "practice" || s.Difficulty != "hard" {
		t.Errorf("arena/difficulty = %s/%s", s.Arena, s.Difficulty)
	}
	if len(s.Steps) != 6 {
		t.Fatalf("steps = %d, expected 6", len(s.Steps))
	}
	if *s.Steps[1].Turn != -1 || *s.Steps[4].AdvanceMs != 250 || s.Steps[5].Checkpoint != "end" {
		t.Errorf("steps decoded wrong: %+v", s.Steps)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantIndex int // -1 when the error is not step-specific
		wantText  string
	}{
		{
			name:      "unknown command",
			yaml:      "arena: meadow\nsteps:\n  - cmd: start\n  - advance_ms: 10\n  - cmd: fly\n",
			wantIndex: 2,
			wantText:  "unknown cmd",
		},
		{
			name:      "two actions",
			yaml:      "arena: meadow\nsteps:\n  - move: 1\n    turn: 1\n",
			wantIndex: 0,
			wantText:  "2 actions",
		},
		{
			name:      "empty step",
			yaml:      "arena: meadow\nsteps:\n  - cmd: start\n  - {}\n",
			wantIndex: 1,
			wantText:  "no action",
		},
		{
			name:      "turn out of range",
			yaml:      "arena: meadow\nsteps:\n  - turn: 2\n",
			wantIndex: 0,
			wantText:  "turn must be",
		},
		{
			name:      "non-positive advance",
			yaml:      "arena: meadow\nsteps:\n  - advance_ms: 0\n",
			wantIndex: 0,
			wantText:  "advance_ms",
		},
		{
			name:      "unknown key",
			yaml:      "arena: meadow\nsteps:\n  - sprint: true\n",
			wantIndex: -1,
			wantText:  "sprint",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantText) {
				t.Errorf("error %q does not mention %q", err, tc.wantText)
			}
			var se *StepError
			if tc.wantIndex < 0 {
				return
			}
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a StepError", err)
			}
			if se.Index != tc.wantIndex {
				t.Errorf("step index = %d, expected %d", se.Index, tc.wantIndex)
			}
		})
	}
}

func TestEmptyStepIsErrEmptyStep(t *testing.T) {
	_, err := Parse([]byte("arena: meadow\nsteps:\n  - {}\n"))
	if !errors.Is(err, ErrEmptyStep) {
		t.Errorf("error = %v, expected ErrEmptyStep", err)
	}
}

func TestRunSettlesOnMeadow(t *testing.T) {
	script, err := Load(filepath.Join("testdata", "meadow_walk.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	res, err := Runner{}.Run(script, config.DefaultCubeConfig())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(res.Checkpoints) != 2 {
		t.Fatalf("checkpoints = %d, expected 2", len(res.Checkpoints))
	}

	settled := res.Checkpoints[0]
	if settled.Label != "settled" || settled.Step != 2 {
		t.Errorf("first checkpoint = %s at step %d", settled.Label, settled.Step)
	}
	if settled.Snapshot.Tick != 10 {
		t.Errorf("settled tick = %d, expected 10", settled.Snapshot.Tick)
	}
	p := settled.Snapshot.Player
	if math.Abs(p.Position.Y-0.5) > 1e-9 || p.Position.X != -7 || p.Position.Z != -7 || !p.Grounded {
		t.Errorf("settled player = %+v, expected at rest on spawn", p)
	}

	if res.Ticks < 10 {
		t.Errorf("ticks = %d, expected at least 10", res.Ticks)
	}
	if res.Final.Arena != "meadow" {
		t.Errorf("final arena = %s", res.Final.Arena)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	script, err := Load(filepath.Join("testdata", "meadow_walk.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	a, err := Runner{}.Run(script, config.DefaultCubeConfig())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	b, err := Runner{}.Run(script, config.DefaultCubeConfig())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.Digest() != b.Digest() {
		t.Errorf("digests differ: %x vs %x", a.Digest(), b.Digest())
	}
	for i := range a.Checkpoints {
		if a.Checkpoints[i].Snapshot.Digest() != b.Checkpoints[i].Snapshot.Digest() {
			t.Errorf("checkpoint %s differs between runs", a.Checkpoints[i].Label)
		}
	}
}

func TestRunAppliesDifficulty(t *testing.T) {
	run := func(difficulty string) sim.Snapshot {
		res, err := Runner{}.Run(Script{
			Arena:      "meadow",
			Difficulty: difficulty,
			Steps:      []Step{{Cmd: CmdStart}, {AdvanceMs: ptr(500.0)}},
		}, config.DefaultCubeConfig())
		if err != nil {
			t.Fatalf("Run(%s) error: %v", difficulty, err)
		}
		return res.Final
	}

	easy, hard := run("easy"), run("hard")
	// Both start at the same x moving +x; the faster enemy travels further
	if hard.Enemy.Position.X <= easy.Enemy.Position.X {
		t.Errorf("hard enemy x = %g, expected beyond easy x = %g", hard.Enemy.Position.X, easy.Enemy.Position.X)
	}
}

func TestRunIgnoresInvalidCommands(t *testing.T) {
	res, err := Runner{}.Run(Script{
		Arena: "meadow",
		Steps: []Step{{Cmd: CmdPause}, {Cmd: CmdRestart}, {AdvanceMs: ptr(100.0)}},
	}, config.DefaultCubeConfig())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Final.Mode != sim.ModeStart || res.Ticks != 0 {
		t.Errorf("mode = %s ticks = %d, expected an untouched Start screen", res.Final.Mode, res.Ticks)
	}
}

func TestRunUnknownArena(t *testing.T) {
	_, err := Runner{}.Run(Script{Arena: "atlantis"}, config.DefaultCubeConfig())
	if err == nil || !strings.Contains(err.Error(), "atlantis") {
		t.Errorf("error = %v, expected unknown arena", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
