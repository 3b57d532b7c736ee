package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cuberun/internal/arena"
	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/sim"
)

func meadowSnapshot(t *testing.T) sim.Snapshot {
	t.Helper()
	s := sim.New(config.DefaultCubeConfig(), arena.Meadow())
	return s.Snapshot()
}

func screenContains(s *core.Screen, r rune) bool {
	return strings.ContainsRune(s.String(), r)
}

func TestDrawSnapshotMarksEntities(t *testing.T) {
	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, meadowSnapshot(t))

	for _, r := range []rune{'@', '◆', 'x', '▓'} {
		if !screenContains(screen, r) {
			t.Errorf("screen is missing %q:\n%s", r, screen.String())
		}
	}
	if !strings.Contains(screen.Row(1), "Press Enter to start") {
		t.Errorf("banner row = %q, expected the start prompt", screen.Row(1))
	}
	if !strings.Contains(screen.Row(0), "START") {
		t.Errorf("status row = %q, expected the mode", screen.Row(0))
	}
}

func TestDrawSnapshotColorsPlayer(t *testing.T) {
	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, meadowSnapshot(t))

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '@' {
				if c.Color != core.ColorPlayer {
					t.Errorf("player color = %d, expected %d", c.Color, core.ColorPlayer)
				}
				return
			}
		}
	}
	t.Error("player not drawn")
}

func TestDrawSnapshotBanners(t *testing.T) {
	snap := meadowSnapshot(t)

	tests := []struct {
		mode  sim.Mode
		cause sim.Cause
		want  string
	}{
		{sim.ModePaused, sim.CauseNone, "Paused"},
		{sim.ModeWon, sim.CauseNone, "Goal reached"},
		{sim.ModeLost, sim.CauseEnemy, "Caught by the patrol"},
		{sim.ModeLost, sim.CauseFall, "fell off the edge"},
	}

	for _, tc := range tests {
		snap.Mode, snap.Cause = tc.mode, tc.cause
		screen := core.NewScreen(80, 24)
		DrawSnapshot(screen, snap)
		if !strings.Contains(screen.Row(1), tc.want) {
			t.Errorf("%s/%s banner = %q, expected %q", tc.mode, tc.cause, screen.Row(1), tc.want)
		}
	}
}

func TestDrawSnapshotTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}, {10, 3}} {
		screen := core.NewScreen(size[0], size[1])
		DrawSnapshot(screen, meadowSnapshot(t)) // must not panic
	}
}

func TestFacingRune(t *testing.T) {
	tests := []struct {
		f    sim.Facing
		want rune
	}{
		{sim.Facing{X: 1}, '→'},
		{sim.Facing{X: -1}, '←'},
		{sim.Facing{Z: 1}, '↓'},
		{sim.Facing{Z: -1}, '↑'},
		{sim.Facing{X: 0.7, Z: 0.7}, '↘'},
	}
	for _, tc := range tests {
		if got := facingRune(tc.f); got != tc.want {
			t.Errorf("facingRune(%+v) = %q, expected %q", tc.f, got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "cube", core.ColorGoal)
	out := RenderScreen(screen)
	if !strings.Contains(out, "cube") {
		t.Errorf("rendered output %q lost the text", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("rendered output has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
