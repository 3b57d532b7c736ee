package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/sim"
	"github.com/vovakirdan/cuberun/internal/storage"
)

// Options configures a play session.
type Options struct {
	Arena     string
	Cube      config.CubeConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // Nil plays without scores
	Logger    *log.Logger    // Nil discards log output
	HoldTicks int            // Key latch length, DefaultHoldTicks when zero
}

// Model is the Bubble Tea model for one arena session.
type Model struct {
	arena  string
	title  string
	sim    *sim.Simulation
	driver *sim.Driver
	input  *HeldInput
	sink   *FrameSink
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	keys   *KeyMapper
	help   help.Model
	config core.RuntimeConfig

	gen        uint64
	lastFrame  time.Time
	runID      string
	recorded   bool // Whether the current run has been written to the store
	quitting   bool
	backToMenu bool
	quitOnMenu bool // Standalone sessions have no arena picker to return to
}

// NewModel creates a session model for the arena named in opts.
func NewModel(opts Options) (Model, error) {
	s, err := registry.Create(opts.Arena, opts.Cube)
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	input := NewHeldInput(opts.HoldTicks)
	sink := &FrameSink{}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		arena:  opts.Arena,
		title:  s.Layout().Title,
		sim:    s,
		driver: sim.NewDriver(s, input, sink),
		input:  input,
		sink:   sink,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:  opts.Store,
		logger: logger.With("arena", opts.Arena),
		keys:   NewKeyMapper(),
		help:   h,
		config: cfg,
		gen:    nextGeneration(),
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Menu):
		m.abandon()
		if m.quitOnMenu {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if m.sim.Start() {
			m.beginRun()
		}

	case core.ActionRestart:
		m.abandon()
		if m.sim.Restart() {
			m.beginRun()
		}

	case core.ActionPause:
		if m.sim.TogglePause() {
			m.driver.Discard()
			m.input.Release()
			m.logger.Debug("pause toggled", "run", m.runID, "mode", m.sim.Mode())
		}

	default:
		m.input.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, msg.Height-1)
	m.sim.SnapCamera()
	return m, nil
}

// handleTick feeds elapsed wall-clock time to the frame driver.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := time.Second / time.Duration(m.config.TickRate)
	if !m.lastFrame.IsZero() {
		delta = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	res := m.driver.Frame(delta)
	for _, ev := range res.Events {
		m.recordEvent(ev)
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m *Model) beginRun() {
	m.runID = uuid.NewString()
	m.recorded = false
	m.driver.Discard()
	m.input.Release()
	m.logger.Info("run started", "run", m.runID)
}

// recordEvent logs a Won/Lost transition and stores the run.
func (m *Model) recordEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventWon:
		m.logger.Info("run won", "run", m.runID, "elapsed", fmt.Sprintf("%.2fs", ev.Elapsed), "score", ev.Score)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.arena, ev.Score, ev.Elapsed)
		}
		m.saveRun(storage.OutcomeWon, ev)
	case sim.EventLost:
		m.logger.Info("run lost", "run", m.runID, "cause", ev.Cause, "elapsed", fmt.Sprintf("%.2fs", ev.Elapsed))
		m.saveRun(storage.OutcomeLost, ev)
	}
}

// abandon records an unfinished run that had any progress.
func (m *Model) abandon() {
	mode := m.sim.Mode()
	if m.recorded || m.runID == "" || mode == sim.ModeStart || mode.Terminal() {
		return
	}
	snap := m.sim.Snapshot()
	if snap.Tick == 0 {
		return
	}
	m.logger.Info("run abandoned", "run", m.runID, "elapsed", fmt.Sprintf("%.2fs", snap.ElapsedSec))
	m.saveRun(storage.OutcomeAbandoned, sim.Event{Tick: snap.Tick, Elapsed: snap.ElapsedSec})
}

func (m *Model) saveRun(outcome string, ev sim.Event) {
	m.recorded = true
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		RunID:   m.runID,
		ArenaID: m.arena,
		Outcome: outcome,
		Cause:   string(ev.Cause),
		Elapsed: ev.Elapsed,
		Score:   ev.Score,
		Ticks:   int64(ev.Tick),
		Digest:  fmt.Sprintf("%016x", m.sim.Snapshot().Digest()),
	})
	if err != nil {
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
	}
}

// saveScreenshot writes the current frame as text and the snapshot as JSON.
func (m *Model) saveScreenshot() {
	snap := m.snapshot()
	DrawSnapshot(m.screen, snap)

	dir := filepath.Join(os.Getenv("HOME"), ".cuberun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.arena, time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)
	if data, err := snap.Rounded(2).JSON(); err == nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		os.WriteFile(base+".json", data, 0o600)
	}
}

func (m Model) snapshot() sim.Snapshot {
	if snap, ok := m.sink.Last(); ok {
		return snap
	}
	return m.sim.Snapshot()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys.Keys()))
	rows := m.config.ScreenH - 1 - strings.Count(helpView, "\n")
	if rows != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, rows)
	}

	DrawSnapshot(m.screen, m.snapshot())
	m.screen.DrawText(max(0, m.screen.Width()-len([]rune(m.title))-1), 0, m.title)

	return RenderScreen(m.screen) + "\n" + helpView
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the arena picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Run starts a Bubble Tea program for a single arena.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	model.quitOnMenu = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
