package common

import "time"

// TimerMode selects what a Timer does once its duration elapses.
type TimerMode uint8

const (
	// TimerOnce finishes a single time and then holds at its duration.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps its progress by the duration every time it
	// finishes so firings stay aligned to multiples of the duration.
	TimerRepeating
)

// Timer accumulates ticked time and reports when a duration has elapsed.
// A paused timer ignores ticks.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	paused   bool
	finished bool
	done     bool
}

func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick advances the timer by delta and reports whether it finished during
// this call. A repeating timer finishes at most once per call; any progress
// past the duration is kept modulo the duration.
func (t *Timer) Tick(delta time.Duration) bool {
	if t == nil {
		return false
	}
	t.finished = false
	if t.paused || delta <= 0 || t.done {
		return false
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		return false
	}

	t.finished = true
	switch t.mode {
	case TimerRepeating:
		if t.duration > 0 {
			t.elapsed %= t.duration
		} else {
			t.elapsed = 0
		}
	default:
		t.elapsed = t.duration
		t.done = true
	}
	return true
}

// JustFinished reports whether the last Tick finished the timer.
func (t *Timer) JustFinished() bool {
	return t != nil && t.finished
}

func (t *Timer) Pause() {
	if t == nil {
		return
	}
	t.paused = true
}

func (t *Timer) Unpause() {
	if t == nil {
		return
	}
	t.paused = false
}

func (t *Timer) Paused() bool {
	return t != nil && t.paused
}

func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}
	return t.elapsed
}

func (t *Timer) Duration() time.Duration {
	if t == nil {
		return 0
	}
	return t.duration
}

// SetDuration changes the duration without touching accumulated progress.
func (t *Timer) SetDuration(d time.Duration) {
	if t == nil {
		return
	}
	t.duration = d
}

// Reset clears progress and the finished state; the paused flag is kept.
func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.finished = false
	t.done = false
}
