package system

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// CombatSystem turns contacts into attack timer state and fired timers into
// damage on the target.
type CombatSystem struct {
	// Lenient logs and skips contacts with dead entities instead of failing
	// the step.
	Lenient bool
}

func NewCombatSystem(lenient bool) *CombatSystem {
	return &CombatSystem{Lenient: lenient}
}

// ApplyContactEvents applies every event in order. It must run before
// ApplyDamageTicks in the same step.
func (s *CombatSystem) ApplyContactEvents(w *ecs.World, ctx *Context, events []ecs.ContactEvent) error {
	if len(events) == 0 {
		return nil
	}
	target, err := ResolveTarget(w, ctx)
	if err != nil {
		return err
	}

	for _, evt := range events {
		other, ok := evt.Involves(target)
		if !ok || other == target {
			continue
		}

		if !w.IsAlive(other) {
			err := fmt.Errorf("%w: %s contact with %s", ErrUnknownEnemy, evt.Kind, other)
			if s.Lenient {
				ctx.logf("combat: skipping contact: %v", err)
				continue
			}
			return err
		}
		if !ecs.Has(w, other, component.EnemyTagComponent.Kind()) {
			continue
		}

		timer, ok := ecs.Get(w, other, component.AttackTimerComponent.Kind())
		if !ok {
			return fmt.Errorf("%w: enemy %s has no attack timer", ErrUnknownEnemy, other)
		}

		switch evt.Kind {
		case ecs.ContactBegin:
			timer.OnContactBegin()
		case ecs.ContactEnd:
			timer.OnContactEnd(ctx.Now)
		}
	}
	return nil
}

// ApplyDamageTicks advances every attack timer in ascending entity order and
// subtracts the enemy's damage from the target each time one fires.
func (s *CombatSystem) ApplyDamageTicks(w *ecs.World, ctx *Context) error {
	target, err := ResolveTarget(w, ctx)
	if err != nil {
		return err
	}
	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("combat: target %s health: %w", target, ErrMissingComponent)
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.AttackTimerComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, timer *component.AttackTimer) {
		if !timer.Update(ctx.Delta, ctx.Now) {
			return
		}
		health.Current -= enemy.Damage
		w.Events().Push(ecs.Event{Type: ecs.EventDamage, Data: ecs.DamageEvent{
			Enemy:  e,
			Target: target,
			Amount: enemy.Damage,
			Health: health.Current,
		}})
		ctx.debugf("combat: enemy %s hit target for %d, health %d", e, enemy.Damage, health.Current)
	})
	return nil
}
