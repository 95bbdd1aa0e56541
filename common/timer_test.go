package common

import (
	"testing"
	"time"
)

func TestTimerRepeating(t *testing.T) {
	cases := []struct {
		name      string
		deltas    []time.Duration
		wantFires []int // indexes into deltas that fire
		wantLeft  time.Duration
	}{
		{
			name:      "exact_steps",
			deltas:    repeat(100*time.Millisecond, 25),
			wantFires: []int{9, 19},
			wantLeft:  500 * time.Millisecond,
		},
		{
			name:      "uneven_steps_keep_remainder",
			deltas:    repeat(300*time.Millisecond, 7),
			wantFires: []int{3, 6},
			wantLeft:  100 * time.Millisecond,
		},
		{
			name:      "oversized_step_fires_once",
			deltas:    []time.Duration{2500 * time.Millisecond},
			wantFires: []int{0},
			wantLeft:  500 * time.Millisecond,
		},
		{
			name:      "zero_and_negative_ignored",
			deltas:    []time.Duration{0, -time.Second, 999 * time.Millisecond},
			wantFires: nil,
			wantLeft:  999 * time.Millisecond,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tm := NewTimer(time.Second, TimerRepeating)
			var fires []int
			for i, d := range c.deltas {
				if tm.Tick(d) {
					fires = append(fires, i)
					if !tm.JustFinished() {
						t.Fatalf("JustFinished false right after firing")
					}
				}
			}
			if len(fires) != len(c.wantFires) {
				t.Fatalf("expected fires %v, got %v", c.wantFires, fires)
			}
			for i := range fires {
				if fires[i] != c.wantFires[i] {
					t.Fatalf("expected fires %v, got %v", c.wantFires, fires)
				}
			}
			if tm.Elapsed() != c.wantLeft {
				t.Fatalf("expected elapsed %v, got %v", c.wantLeft, tm.Elapsed())
			}
		})
	}
}

func TestTimerPause(t *testing.T) {
	tm := NewTimer(time.Second, TimerRepeating)
	tm.Tick(400 * time.Millisecond)
	tm.Pause()
	if tm.Tick(5 * time.Second) {
		t.Fatalf("paused timer must not fire")
	}
	if tm.Elapsed() != 400*time.Millisecond {
		t.Fatalf("paused timer advanced to %v", tm.Elapsed())
	}
	tm.Unpause()
	if !tm.Tick(600 * time.Millisecond) {
		t.Fatalf("expected fire after resuming")
	}
	if tm.Elapsed() != 0 {
		t.Fatalf("expected wrapped progress 0, got %v", tm.Elapsed())
	}
}

func TestTimerOnce(t *testing.T) {
	tm := NewTimer(time.Second, TimerOnce)
	if !tm.Tick(1500 * time.Millisecond) {
		t.Fatalf("expected first fire")
	}
	if tm.Tick(time.Second) {
		t.Fatalf("once timer fired twice")
	}
	if tm.Elapsed() != time.Second {
		t.Fatalf("expected elapsed clamped to duration, got %v", tm.Elapsed())
	}
	tm.Reset()
	if !tm.Tick(time.Second) {
		t.Fatalf("expected fire after reset")
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClockTPS(10)
	for i := 0; i < 35; i++ {
		c.Tick()
	}
	if c.Delta() != 100*time.Millisecond {
		t.Fatalf("expected delta 100ms, got %v", c.Delta())
	}
	if c.Elapsed() != 3500*time.Millisecond {
		t.Fatalf("expected elapsed 3.5s, got %v", c.Elapsed())
	}
	c.TickBy(-time.Second)
	if c.Delta() != 0 || c.Elapsed() != 3500*time.Millisecond {
		t.Fatalf("negative step must not rewind: delta=%v elapsed=%v", c.Delta(), c.Elapsed())
	}
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}
