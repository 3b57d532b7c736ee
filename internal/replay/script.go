// Package replay runs scripted input against a simulation without a terminal
// or wall clock. Scripts are YAML:
//
//	arena: meadow
//	steps:
//	  - cmd: start
//	  - move: 1
//	  - advance_ms: 500
//	  - jump: true
//	  - checkpoint: after-jump
//
// Each step performs exactly one action. Runs are deterministic: the same
// script and config always produce the same snapshot digest.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Commands accepted by the cmd step.
const (
	CmdStart   = "start"
	CmdRestart = "restart"
	CmdPause   = "pause"
	CmdReset   = "reset"
	CmdSnap    = "snap_camera"
)

// Script is a parsed replay file.
type Script struct {
	Arena      string `yaml:"arena"`
	Difficulty string `yaml:"difficulty,omitempty"`
	Steps      []Step `yaml:"steps"`
}

// Step is one scripted action. Exactly one field must be set.
type Step struct {
	Cmd        string   `yaml:"cmd,omitempty"`
	Turn       *int     `yaml:"turn,omitempty"`
	Move       *int     `yaml:"move,omitempty"`
	Jump       bool     `yaml:"jump,omitempty"`
	AdvanceMs  *float64 `yaml:"advance_ms,omitempty"`
	Checkpoint string   `yaml:"checkpoint,omitempty"`
}

// StepError reports a problem with a specific step.
type StepError struct {
	Index int // Zero-based position in Steps
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ErrEmptyStep is returned for a step with no action.
var ErrEmptyStep = errors.New("no action")

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and validates every step. Unknown keys are rejected.
func Parse(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks that every step names exactly one known action.
func (s Script) Validate() error {
	var errs []error
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, &StepError{Index: i, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	n := 0
	if st.Cmd != "" {
		n++
		switch st.Cmd {
		case CmdStart, CmdRestart, CmdPause, CmdReset, CmdSnap:
		default:
			return fmt.Errorf("unknown cmd %q", st.Cmd)
		}
	}
	if st.Turn != nil {
		n++
		if *st.Turn < -1 || *st.Turn > 1 {
			return fmt.Errorf("turn must be -1, 0 or 1, got %d", *st.Turn)
		}
	}
	if st.Move != nil {
		n++
		if *st.Move < -1 || *st.Move > 1 {
			return fmt.Errorf("move must be -1, 0 or 1, got %d", *st.Move)
		}
	}
	if st.Jump {
		n++
	}
	if st.AdvanceMs != nil {
		n++
		if !(*st.AdvanceMs > 0) {
			return fmt.Errorf("advance_ms must be positive, got %g", *st.AdvanceMs)
		}
	}
	if st.Checkpoint != "" {
		n++
	}

	switch {
	case n == 0:
		return ErrEmptyStep
	case n > 1:
		return fmt.Errorf("%d actions in one step, expected 1", n)
	}
	return nil
}
