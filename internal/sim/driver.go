package sim

import (
	"time"

	"github.com/vovakirdan/cuberun/internal/core"
)

// InputSource supplies held input. Sample is called once at the start of every tick.
type InputSource interface {
	Sample() core.Intents
}

// RenderSink receives a snapshot after every frame.
type RenderSink interface {
	Render(Snapshot)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.Intents

// Sample calls f.
func (f InputFunc) Sample() core.Intents {
	return f()
}

// accEpsilon absorbs float drift so a frame of exactly N ticks runs N ticks.
const accEpsilon = 1e-9

// Driver turns variable wall-clock frame deltas into fixed Steps.
// Time beyond MaxFrameDelta in a single frame is dropped; sub-tick
// remainders carry over to the next frame.
type Driver struct {
	sim      *Simulation
	input    InputSource
	sink     RenderSink
	maxDelta float64
	acc      float64
}

// NewDriver creates a frame driver. input and sink may be nil.
func NewDriver(s *Simulation, input InputSource, sink RenderSink) *Driver {
	return &Driver{
		sim:      s,
		input:    input,
		sink:     sink,
		maxDelta: s.cfg.Physics.MaxFrameDelta,
	}
}

// Frame consumes one frame of wall-clock time.
func (d *Driver) Frame(delta time.Duration) StepResult {
	dt := delta.Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > d.maxDelta {
		dt = d.maxDelta
	}
	d.acc += dt

	tick := d.sim.TickSeconds()
	result := StepResult{Mode: d.sim.Mode()}
	for d.acc+accEpsilon >= tick {
		d.acc -= tick
		if d.input != nil {
			d.sim.ApplyIntents(d.input.Sample())
		}
		r := d.sim.Step(tick)
		result.Ticks += r.Ticks
		result.Events = append(result.Events, r.Events...)
		result.Mode = r.Mode
	}
	if d.acc < 0 {
		d.acc = 0
	}

	if d.sink != nil {
		d.sink.Render(d.sim.Snapshot())
	}
	return result
}

// Pending returns the carried sub-tick time in seconds.
func (d *Driver) Pending() float64 {
	return d.acc
}

// Discard drops carried time, e.g. after a pause or restart.
func (d *Driver) Discard() {
	d.acc = 0
}
