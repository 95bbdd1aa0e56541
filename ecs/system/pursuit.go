package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// ComputeVelocity steers from enemy straight at target at speed. Coincident
// positions yield the zero vector.
func ComputeVelocity(enemy, target cp.Vector, speed float64) cp.Vector {
	d := target.Sub(enemy)
	if d.X == 0 && d.Y == 0 {
		return cp.Vector{}
	}
	return d.Normalize().Mult(speed)
}

type PursuitSystem struct{}

func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

// Update points every enemy's velocity at the target's current position.
func (s *PursuitSystem) Update(w *ecs.World, ctx *Context) error {
	target, err := ResolveTarget(w, ctx)
	if err != nil {
		return err
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("pursuit: target %s transform: %w", target, ErrMissingComponent)
	}
	goal := targetTransform.Vector()

	ecs.ForEach4(
		w,
		component.EnemyTagComponent.Kind(),
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(_ ecs.Entity, _ *component.EnemyTag, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
			v.SetVector(ComputeVelocity(t.Vector(), goal, enemy.Speed))
		},
	)
	return nil
}
