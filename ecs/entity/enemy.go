package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

const defaultBodyMass = 1

// NewEnemy creates a pursuing enemy at pos from spec. When withBody is set
// the enemy also gets a dynamic physics body for the physics system to
// build on its next update.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, pos cp.Vector, withBody bool) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: %w", prefabs.ErrInvalidSpec)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Speed:  spec.Speed,
		Damage: spec.Damage,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.AttackTimerComponent.Kind(), component.NewAttackTimer(spec.AttackPeriod)); err != nil {
		return 0, fmt.Errorf("enemy: add attack timer: %w", err)
	}

	if withBody {
		mass := spec.Mass
		if mass <= 0 {
			mass = defaultBodyMass
		}
		if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Radius: spec.Radius,
			Mass:   mass,
		}); err != nil {
			return 0, fmt.Errorf("enemy: add physics body: %w", err)
		}
	}

	return entity, nil
}
