package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cuberun/internal/arena"
	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/sim"
	"github.com/vovakirdan/cuberun/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Arena:   arena.PracticeID,
		Cube:    config.DefaultCubeConfig(),
		Runtime: core.DefaultConfig(),
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// frames sends n ticks 50ms apart, which the driver turns into 3 fixed ticks each.
func frames(t *testing.T, m Model, start time.Time, n int) Model {
	t.Helper()
	for i := 0; i <= n; i++ {
		m = update(t, m, TickMsg{At: start.Add(time.Duration(i) * 50 * time.Millisecond), Gen: m.gen})
	}
	return m
}

func TestNewModelUnknownArena(t *testing.T) {
	if _, err := NewModel(Options{Arena: "nowhere", Cube: config.DefaultCubeConfig()}); err == nil {
		t.Error("NewModel should fail for an unknown arena")
	}
}

func TestModelStartsAndMoves(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.sim.Player().Position

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sim.Mode() != sim.ModePlaying {
		t.Fatalf("mode = %s after enter, expected playing", m.sim.Mode())
	}
	if m.runID == "" {
		t.Error("starting a run should assign a run ID")
	}

	m = update(t, m, runeKey("w"))
	m = frames(t, m, time.Now(), 4)

	if m.sim.Player().Position.ApproxEqual(start) {
		t.Error("player should have moved forward")
	}
	if _, ok := m.sink.Last(); !ok {
		t.Error("frames should reach the render sink")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(TickMsg{At: time.Now(), Gen: m.gen + 1000})
	if cmd != nil {
		t.Error("a tick from another game should not schedule a new frame")
	}
}

func TestModelPauseFreezes(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey("p"))
	if m.sim.Mode() != sim.ModePaused {
		t.Fatalf("mode = %s, expected paused", m.sim.Mode())
	}

	before := m.sim.Snapshot().Digest()
	m = update(t, m, runeKey("w"))
	m = frames(t, m, time.Now(), 3)
	if m.sim.Snapshot().Digest() != before {
		t.Error("state changed while paused")
	}
}

func TestModelRecordsAbandonedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = frames(t, m, time.Now(), 2)
	runID := m.runID

	m = update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	run, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() error: %v", err)
	}
	if run == nil || run.Outcome != storage.OutcomeAbandoned || run.ArenaID != arena.PracticeID {
		t.Errorf("stored run = %+v, expected an abandoned practice run", run)
	}
}

func TestModelMenuKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc should request the arena picker inside a session")
	}

	m = newTestModel(t, nil)
	m.quitOnMenu = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() {
		t.Error("esc should quit a standalone game")
	}
}

func TestModelViewFitsScreen(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 {
		t.Errorf("screen width = %d, expected 60", m.screen.Width())
	}
	if v := m.View(); v == "" {
		t.Error("View should not be empty before quitting")
	}
}

func TestModelSkipsEmptyRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey("q"))

	runs, err := store.RecentRuns(arena.PracticeID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("a run with no ticks should not be stored, got %d", len(runs))
	}
}
