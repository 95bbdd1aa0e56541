package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// NewTarget creates the controlled actor. With withBody it carries a
// kinematic sensor so enemies overlap it instead of pushing it around.
func NewTarget(w *ecs.World, spec *prefabs.TargetSpec, withBody bool) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("target: %w", prefabs.ErrInvalidSpec)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TargetTagComponent.Kind(), &component.TargetTag{}); err != nil {
		return 0, fmt.Errorf("target: add target tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	}); err != nil {
		return 0, fmt.Errorf("target: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("target: add health: %w", err)
	}

	if withBody {
		if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Radius:    spec.Radius,
			Kinematic: true,
			Sensor:    true,
		}); err != nil {
			return 0, fmt.Errorf("target: add physics body: %w", err)
		}
	}

	return entity, nil
}
