package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

type recordingSink struct {
	frames []Snapshot
}

func (r *recordingSink) Render(s Snapshot) {
	r.frames = append(r.frames, s)
}

func TestDriverFrameTicks(t *testing.T) {
	tests := []struct {
		name   string
		frames []time.Duration
		want   int
	}{
		{"exact three ticks", []time.Duration{50 * time.Millisecond}, 3},
		{"long frame is clamped", []time.Duration{time.Second}, 3},
		{"short frames accumulate", []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, 1},
		{"sub-tick frame", []time.Duration{5 * time.Millisecond}, 0},
		{"negative frame", []time.Duration{-time.Second}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newPlaying(t, flatLayout())
			d := NewDriver(s, nil, nil)
			total := 0
			for _, f := range tc.frames {
				total += d.Frame(f).Ticks
			}
			if total != tc.want {
				t.Errorf("ticks = %d, expected %d", total, tc.want)
			}
		})
	}
}

func TestDriverCarriesRemainder(t *testing.T) {
	s := newPlaying(t, flatLayout())
	d := NewDriver(s, nil, nil)

	d.Frame(20 * time.Millisecond)
	approxEqual(t, d.Pending(), 0.02-s.TickSeconds(), 1e-9, "pending")

	d.Discard()
	if d.Pending() != 0 {
		t.Errorf("pending = %g after Discard, expected 0", d.Pending())
	}
}

func TestDriverSamplesInputPerTickAndRendersPerFrame(t *testing.T) {
	s := newPlaying(t, flatLayout())
	samples := 0
	input := InputFunc(func() core.Intents {
		samples++
		return core.Intents{Move: 1}
	})
	sink := &recordingSink{}
	d := NewDriver(s, input, sink)

	d.Frame(50 * time.Millisecond)
	d.Frame(5 * time.Millisecond)

	if samples != 3 {
		t.Errorf("input sampled %d times, expected once per tick (3)", samples)
	}
	if len(sink.frames) != 2 {
		t.Fatalf("sink rendered %d frames, expected 2", len(sink.frames))
	}
	if sink.frames[0].Tick != 3 {
		t.Errorf("first frame tick = %d, expected 3", sink.frames[0].Tick)
	}
}

func TestDriverRendersWhileNotPlaying(t *testing.T) {
	s := New(config.DefaultCubeConfig(), flatLayout())
	sink := &recordingSink{}
	d := NewDriver(s, nil, sink)

	res := d.Frame(50 * time.Millisecond)
	if res.Ticks != 0 {
		t.Errorf("ticks = %d on the Start screen, expected 0", res.Ticks)
	}
	if len(sink.frames) != 1 || sink.frames[0].Mode != ModeStart {
		t.Error("sink should still render the Start screen")
	}
}

func TestDriverMatchesAdvance(t *testing.T) {
	driven := newPlaying(t, flatLayout())
	d := NewDriver(driven, InputFunc(func() core.Intents {
		return core.Intents{Move: 1, Turn: -1}
	}), nil)
	ticks := 0
	for i := 0; i < 30; i++ {
		ticks += d.Frame(50 * time.Millisecond).Ticks
	}

	advanced := newPlaying(t, flatLayout())
	advanced.SetMoveIntent(1)
	advanced.SetTurnIntent(-1)
	res := advanced.Advance(float64(ticks) * tickMs(advanced))

	if res.Ticks != ticks {
		t.Fatalf("Advance ran %d ticks, driver ran %d", res.Ticks, ticks)
	}
	if driven.Snapshot().Digest() != advanced.Snapshot().Digest() {
		t.Error("driver and Advance diverged for identical input")
	}
}
