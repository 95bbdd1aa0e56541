package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/prefabs"
)

func testEnemySpec() prefabs.EnemySpec {
	return prefabs.EnemySpec{Speed: 10, Damage: 2, Health: 5, AttackPeriod: time.Second, Radius: 8, Mass: 1}
}

func testTargetSpec() prefabs.TargetSpec {
	return prefabs.TargetSpec{Speed: 50, Health: 100, Radius: 16}
}

func newTestWorld(t *testing.T, withBodies bool) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	spec := testTargetSpec()
	target, err := entity.NewTarget(w, &spec, withBodies)
	if err != nil {
		t.Fatalf("new target: %v", err)
	}
	return w, target
}

func addEnemy(t *testing.T, w *ecs.World, pos cp.Vector, withBody bool) ecs.Entity {
	t.Helper()
	spec := testEnemySpec()
	e, err := entity.NewEnemy(w, &spec, pos, withBody)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	return e
}

func stepContext(target ecs.Entity, delta, now time.Duration) *Context {
	return &Context{Delta: delta, Now: now, Target: target}
}

func eventsOfType(w *ecs.World, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}
