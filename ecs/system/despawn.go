package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// Releaser drops any external state tied to an entity before it is
// destroyed.
type Releaser interface {
	Release(w *ecs.World, e ecs.Entity)
}

// ReleaseFunc adapts a function to Releaser.
type ReleaseFunc func(w *ecs.World, e ecs.Entity)

func (f ReleaseFunc) Release(w *ecs.World, e ecs.Entity) {
	f(w, e)
}

// DespawnSystem destroys enemies whose health ran out.
type DespawnSystem struct {
	releasers []Releaser
}

func NewDespawnSystem(releasers ...Releaser) *DespawnSystem {
	return &DespawnSystem{releasers: releasers}
}

func (s *DespawnSystem) Update(w *ecs.World, ctx *Context) error {
	if w == nil {
		return nil
	}

	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, h *component.Health) {
		if !h.Depleted() {
			return
		}
		for _, r := range s.releasers {
			r.Release(w, e)
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventDespawn, Data: ecs.DespawnEvent{Entity: e}})
		ctx.debugf("despawn: enemy %s", e)
	})
	return nil
}
