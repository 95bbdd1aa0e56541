package system

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const step = 100 * time.Millisecond

// runSteps drives the combat system for n steps of 100ms, applying the
// contacts scheduled for each step index (1-based) first.
func runSteps(t *testing.T, w *ecs.World, target ecs.Entity, combat *CombatSystem, n int, start time.Duration, contacts map[int][]ecs.ContactEvent) time.Duration {
	t.Helper()
	now := start
	for i := 1; i <= n; i++ {
		now += step
		ctx := stepContext(target, step, now)
		if err := combat.ApplyContactEvents(w, ctx, contacts[i]); err != nil {
			t.Fatalf("step %d contacts: %v", i, err)
		}
		if err := combat.ApplyDamageTicks(w, ctx); err != nil {
			t.Fatalf("step %d damage: %v", i, err)
		}
	}
	return now
}

func targetHealth(t *testing.T, w *ecs.World, target ecs.Entity) int {
	t.Helper()
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("target has no health")
	}
	return h.Current
}

func TestCombatContinuousContact(t *testing.T) {
	w, target := newTestWorld(t, false)
	enemy := addEnemy(t, w, cp.Vector{}, false)
	combat := NewCombatSystem(false)

	contacts := map[int][]ecs.ContactEvent{
		1: {{Kind: ecs.ContactBegin, Subject: target, Other: enemy}},
	}
	runSteps(t, w, target, combat, 35, 0, contacts)

	if got := targetHealth(t, w, target); got != 100-6 {
		t.Fatalf("expected health 94, got %d", got)
	}

	damage := eventsOfType(w, ecs.EventDamage)
	if len(damage) != 3 {
		t.Fatalf("expected 3 damage events, got %d", len(damage))
	}
	last := damage[2].Data.(ecs.DamageEvent)
	if last.Enemy != enemy || last.Target != target || last.Amount != 2 || last.Health != 94 {
		t.Fatalf("unexpected damage event %+v", last)
	}
}

func TestCombatNoDamageWithoutContact(t *testing.T) {
	w, target := newTestWorld(t, false)
	addEnemy(t, w, cp.Vector{}, false)

	runSteps(t, w, target, NewCombatSystem(false), 50, 0, nil)

	if got := targetHealth(t, w, target); got != 100 {
		t.Fatalf("expected untouched health, got %d", got)
	}
}

func TestCombatPauseResumeKeepsProgress(t *testing.T) {
	w, target := newTestWorld(t, false)
	enemy := addEnemy(t, w, cp.Vector{}, false)
	combat := NewCombatSystem(false)

	// Contact for steps 1..4 (0.4s), off for 5..7, back on from step 8.
	contacts := map[int][]ecs.ContactEvent{
		1: {{Kind: ecs.ContactBegin, Subject: target, Other: enemy}},
		5: {{Kind: ecs.ContactEnd, Subject: target, Other: enemy}},
		8: {{Kind: ecs.ContactBegin, Subject: enemy, Other: target}},
	}
	runSteps(t, w, target, combat, 7, 0, contacts)

	timer, _ := ecs.Get(w, enemy, component.AttackTimerComponent.Kind())
	if timer.Elapsed() != 400*time.Millisecond {
		t.Fatalf("expected frozen progress 400ms, got %v", timer.Elapsed())
	}
	if timer.State.Phase != component.AttackPaused {
		t.Fatalf("expected paused, got %v", timer.State.Phase)
	}

	// Steps 8..13 accumulate 0.6s more: the timer fires on step 13.
	now := 700 * time.Millisecond
	for i := 8; i <= 13; i++ {
		now += step
		ctx := stepContext(target, step, now)
		if err := combat.ApplyContactEvents(w, ctx, contacts[i]); err != nil {
			t.Fatal(err)
		}
		if err := combat.ApplyDamageTicks(w, ctx); err != nil {
			t.Fatal(err)
		}
		want := 100
		if i == 13 {
			want = 98
		}
		if got := targetHealth(t, w, target); got != want {
			t.Fatalf("step %d: expected health %d, got %d", i, want, got)
		}
	}
}

func TestCombatIgnoresUnrelatedContacts(t *testing.T) {
	w, target := newTestWorld(t, false)
	e1 := addEnemy(t, w, cp.Vector{}, false)
	e2 := addEnemy(t, w, cp.Vector{}, false)
	prop := ecs.CreateEntity(w)

	events := []ecs.ContactEvent{
		{Kind: ecs.ContactBegin, Subject: e1, Other: e2},
		{Kind: ecs.ContactBegin, Subject: target, Other: prop},
		{Kind: ecs.ContactBegin, Subject: target, Other: target},
	}
	combat := NewCombatSystem(false)
	if err := combat.ApplyContactEvents(w, stepContext(target, step, step), events); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range []ecs.Entity{e1, e2} {
		timer, _ := ecs.Get(w, e, component.AttackTimerComponent.Kind())
		if timer.Active() {
			t.Fatalf("enemy %s should not be active", e)
		}
	}
}

func TestCombatUnknownEnemy(t *testing.T) {
	w, target := newTestWorld(t, false)
	enemy := addEnemy(t, w, cp.Vector{}, false)
	ecs.DestroyEntity(w, enemy)
	events := []ecs.ContactEvent{{Kind: ecs.ContactBegin, Subject: target, Other: enemy}}

	err := NewCombatSystem(false).ApplyContactEvents(w, stepContext(target, step, step), events)
	if !errors.Is(err, ErrUnknownEnemy) {
		t.Fatalf("expected ErrUnknownEnemy, got %v", err)
	}

	if err := NewCombatSystem(true).ApplyContactEvents(w, stepContext(target, step, step), events); err != nil {
		t.Fatalf("lenient combat should skip, got %v", err)
	}
}

func TestCombatEnemyWithoutTimer(t *testing.T) {
	w, target := newTestWorld(t, false)
	enemy := addEnemy(t, w, cp.Vector{}, false)
	ecs.Remove(w, enemy, component.AttackTimerComponent.Kind())

	events := []ecs.ContactEvent{{Kind: ecs.ContactBegin, Subject: target, Other: enemy}}
	err := NewCombatSystem(true).ApplyContactEvents(w, stepContext(target, step, step), events)
	if !errors.Is(err, ErrUnknownEnemy) {
		t.Fatalf("expected ErrUnknownEnemy even when lenient, got %v", err)
	}
}

func TestCombatDamageAccumulatesPerEnemy(t *testing.T) {
	w, target := newTestWorld(t, false)
	e1 := addEnemy(t, w, cp.Vector{}, false)
	e2 := addEnemy(t, w, cp.Vector{}, false)
	enemy2, _ := ecs.Get(w, e2, component.EnemyComponent.Kind())
	enemy2.Damage = 3

	contacts := map[int][]ecs.ContactEvent{
		1: {
			{Kind: ecs.ContactBegin, Subject: target, Other: e1},
			{Kind: ecs.ContactBegin, Subject: target, Other: e2},
		},
	}
	runSteps(t, w, target, NewCombatSystem(false), 10, 0, contacts)

	if got := targetHealth(t, w, target); got != 95 {
		t.Fatalf("expected health 95, got %d", got)
	}
	damage := eventsOfType(w, ecs.EventDamage)
	if len(damage) != 2 {
		t.Fatalf("expected 2 damage events, got %d", len(damage))
	}
	if damage[0].Data.(ecs.DamageEvent).Enemy != e1 || damage[1].Data.(ecs.DamageEvent).Enemy != e2 {
		t.Fatalf("expected damage in ascending entity order")
	}
}
