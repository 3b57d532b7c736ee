package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/sim"
)

// Checkpoint is a snapshot captured by a checkpoint step.
type Checkpoint struct {
	Label    string
	Step     int
	Snapshot sim.Snapshot
}

// Result is the outcome of a replay.
type Result struct {
	Arena       string
	Ticks       int
	Events      []sim.Event
	Checkpoints []Checkpoint
	Final       sim.Snapshot
}

// Digest returns the final snapshot digest.
func (r Result) Digest() uint64 {
	return r.Final.Digest()
}

// Runner executes scripts. The zero value is usable.
type Runner struct {
	// Logger receives one debug line per transition. Nil disables logging.
	Logger *log.Logger
}

// Run builds a fresh session for the script's arena and executes every step.
// The script's difficulty, when set, is applied on top of cfg.
func (r Runner) Run(script Script, cfg config.CubeConfig) (Result, error) {
	if err := script.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	if script.Difficulty != "" {
		config.ApplyPreset(&cfg, config.ParseDifficulty(script.Difficulty))
	}

	s, err := registry.Create(script.Arena, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	res := Result{Arena: script.Arena}
	for i, st := range script.Steps {
		r.apply(s, i, st, &res)
	}
	res.Final = s.Snapshot()
	return res, nil
}

func (r Runner) apply(s *sim.Simulation, i int, st Step, res *Result) {
	switch {
	case st.Cmd != "":
		var ok bool
		switch st.Cmd {
		case CmdStart:
			ok = s.Start()
		case CmdRestart:
			ok = s.Restart()
		case CmdPause:
			ok = s.TogglePause()
		case CmdReset:
			s.Reset()
			ok = true
		case CmdSnap:
			s.SnapCamera()
			ok = true
		}
		if !ok && r.Logger != nil {
			r.Logger.Debug("command ignored", "step", i, "cmd", st.Cmd, "mode", s.Mode())
		}
	case st.Turn != nil:
		s.SetTurnIntent(*st.Turn)
	case st.Move != nil:
		s.SetMoveIntent(*st.Move)
	case st.Jump:
		s.QueueJump()
	case st.AdvanceMs != nil:
		out := s.Advance(*st.AdvanceMs)
		res.Ticks += out.Ticks
		res.Events = append(res.Events, out.Events...)
		if r.Logger != nil {
			for _, ev := range out.Events {
				r.Logger.Debug("run "+string(ev.Kind), "step", i, "tick", ev.Tick, "cause", ev.Cause, "score", ev.Score)
			}
		}
	case st.Checkpoint != "":
		res.Checkpoints = append(res.Checkpoints, Checkpoint{Label: st.Checkpoint, Step: i, Snapshot: s.Snapshot()})
	}
}
