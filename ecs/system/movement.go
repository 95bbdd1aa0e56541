package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// MovementSystem integrates velocity into position for entities that are
// not driven by the physics system.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, ctx *Context) error {
	if w == nil || ctx == nil {
		return nil
	}
	dt := ctx.Delta.Seconds()
	if dt <= 0 {
		return nil
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			return
		}
		t.X += v.X * dt
		t.Y += v.Y * dt
	})
	return nil
}
