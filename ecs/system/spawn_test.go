package system

import (
	"testing"
	"time"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

func testSpawnerSpec() prefabs.SpawnerSpec {
	return prefabs.SpawnerSpec{Interval: time.Second, Base: 100, Spread: 100}
}

func runSpawn(t *testing.T, w *ecs.World, target ecs.Entity, s *SpawnSystem, n int) {
	t.Helper()
	now := time.Duration(0)
	for i := 0; i < n; i++ {
		now += step
		if err := s.Update(w, stepContext(target, step, now)); err != nil {
			t.Fatalf("spawn update %d: %v", i, err)
		}
	}
}

func TestSpawnSystemInterval(t *testing.T) {
	w, target := newTestWorld(t, false)
	s := NewSpawnSystem(testSpawnerSpec(), testEnemySpec(), common.NewSequenceRand(0.25, 0.5))

	runSpawn(t, w, target, s, 9)
	if got := len(s.Spawned()); got != 0 {
		t.Fatalf("expected no spawn before 1s, got %d", got)
	}

	runSpawn(t, w, target, s, 11)
	spawned := s.Spawned()
	if len(spawned) != 2 {
		t.Fatalf("expected 2 spawns after 2s, got %d", len(spawned))
	}

	wants := []float64{125, 150}
	for i, e := range spawned {
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			t.Fatalf("spawned enemy %s has no transform", e)
		}
		if tr.X != wants[i] || tr.Y != wants[i] {
			t.Fatalf("spawn %d: expected (%v, %v), got (%v, %v)", i, wants[i], wants[i], tr.X, tr.Y)
		}
	}

	events := eventsOfType(w, ecs.EventSpawn)
	if len(events) != 2 {
		t.Fatalf("expected 2 spawn events, got %d", len(events))
	}
	first := events[0].Data.(ecs.SpawnEvent)
	if first.Entity != spawned[0] || first.Position.X != 125 {
		t.Fatalf("unexpected spawn event %+v", first)
	}
}

func TestSpawnSystemFirstRun(t *testing.T) {
	w, target := newTestWorld(t, false)
	spec := testSpawnerSpec()
	spec.FirstRun = true
	s := NewSpawnSystem(spec, testEnemySpec(), common.NewSequenceRand(0))

	runSpawn(t, w, target, s, 1)
	if got := len(s.Spawned()); got != 1 {
		t.Fatalf("expected an immediate spawn, got %d", got)
	}
	runSpawn(t, w, target, s, 9)
	if got := len(s.Spawned()); got != 2 {
		t.Fatalf("expected the interval spawn at 1s, got %d", got)
	}
}

func TestSpawnSystemMaxAlive(t *testing.T) {
	w, target := newTestWorld(t, false)
	spec := testSpawnerSpec()
	spec.MaxAlive = 1
	s := NewSpawnSystem(spec, testEnemySpec(), common.NewSequenceRand(0.5))

	runSpawn(t, w, target, s, 30)
	if got := ecs.Count(w, component.EnemyTagComponent.Kind()); got != 1 {
		t.Fatalf("expected cap of 1 enemy, got %d", got)
	}

	ecs.DestroyEntity(w, s.Spawned()[0])
	runSpawn(t, w, target, s, 10)
	if got := len(s.Spawned()); got != 2 {
		t.Fatalf("expected a new spawn once below the cap, got %d", got)
	}
}

func TestSpawnSystemSpecReload(t *testing.T) {
	w, target := newTestWorld(t, false)
	s := NewSpawnSystem(testSpawnerSpec(), testEnemySpec(), common.NewSequenceRand(0))

	enemySpec := testEnemySpec()
	enemySpec.Damage = 7
	s.SetEnemySpec(enemySpec)

	spawnerSpec := testSpawnerSpec()
	spawnerSpec.Interval = 500 * time.Millisecond
	spawnerSpec.Base = 10
	s.SetSpawnerSpec(spawnerSpec)

	runSpawn(t, w, target, s, 5)
	spawned := s.Spawned()
	if len(spawned) != 1 {
		t.Fatalf("expected a spawn at 500ms, got %d", len(spawned))
	}
	enemy, _ := ecs.Get(w, spawned[0], component.EnemyComponent.Kind())
	if enemy.Damage != 7 {
		t.Fatalf("expected reloaded damage 7, got %d", enemy.Damage)
	}
	tr, _ := ecs.Get(w, spawned[0], component.TransformComponent.Kind())
	if tr.X != 10 {
		t.Fatalf("expected reloaded base 10, got %v", tr.X)
	}
}
