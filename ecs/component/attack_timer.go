package component

import (
	"time"

	"github.com/milk9111/horde/common"
)

// AttackPhase is the contact state of an attack timer.
type AttackPhase uint8

const (
	// AttackIdle: never contacted; the timer is paused at zero.
	AttackIdle AttackPhase = iota
	// AttackActive: in contact; the timer advances every update.
	AttackActive
	// AttackPausePending: contact ended at AttackState.Since and the next
	// update has not yet reconciled it.
	AttackPausePending
	// AttackPaused: contact ended and was reconciled; progress is frozen.
	AttackPaused
)

func (p AttackPhase) String() string {
	switch p {
	case AttackIdle:
		return "idle"
	case AttackActive:
		return "active"
	case AttackPausePending:
		return "pause_pending"
	case AttackPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// AttackState is the tagged state of an attack timer. Since is only
// meaningful while Phase is AttackPausePending.
type AttackState struct {
	Phase AttackPhase
	Since time.Duration
}

// AttackTimer paces the damage an enemy deals while it touches the target.
// Progress accumulates only while in contact and survives pauses.
type AttackTimer struct {
	State AttackState
	timer common.Timer
}

func NewAttackTimer(period time.Duration) *AttackTimer {
	t := common.NewTimer(period, common.TimerRepeating)
	t.Pause()
	return &AttackTimer{State: AttackState{Phase: AttackIdle}, timer: t}
}

// OnContactBegin resumes the timer without resetting progress.
func (a *AttackTimer) OnContactBegin() {
	a.timer.Unpause()
	a.State = AttackState{Phase: AttackActive}
}

// OnContactEnd freezes progress and records now as the pause instant.
func (a *AttackTimer) OnContactEnd(now time.Duration) {
	a.timer.Pause()
	a.State = AttackState{Phase: AttackPausePending, Since: now}
}

// Update advances the timer and reports whether it fired. The first update
// after a contact end ticks by the time since the recorded pause instant
// instead of delta, then settles into AttackPaused. The underlying timer
// ignores ticks while paused, so frozen progress is never advanced.
func (a *AttackTimer) Update(delta, now time.Duration) bool {
	step := delta
	if a.State.Phase == AttackPausePending {
		step = now - a.State.Since
		a.State = AttackState{Phase: AttackPaused}
	}
	return a.timer.Tick(step)
}

func (a *AttackTimer) Active() bool {
	return a.State.Phase == AttackActive
}

// Elapsed is the progress toward the next fire.
func (a *AttackTimer) Elapsed() time.Duration {
	return a.timer.Elapsed()
}

func (a *AttackTimer) Period() time.Duration {
	return a.timer.Duration()
}

var AttackTimerComponent = NewComponent[AttackTimer]()
