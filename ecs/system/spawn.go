package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/prefabs"
)

// SpawnSystem owns the spawner state and turns its requests into enemies.
type SpawnSystem struct {
	spawner  *component.Spawner
	rng      common.RandomSource
	enemy    prefabs.EnemySpec
	maxAlive int
	bodies   bool

	spawned []ecs.Entity
}

func NewSpawnSystem(spawnerSpec prefabs.SpawnerSpec, enemySpec prefabs.EnemySpec, rng common.RandomSource) *SpawnSystem {
	return &SpawnSystem{
		spawner:  component.NewSpawner(spawnerSpec.Interval, spawnerSpec.Base, spawnerSpec.Spread, spawnerSpec.FirstRun),
		rng:      rng,
		enemy:    enemySpec,
		maxAlive: spawnerSpec.MaxAlive,
	}
}

// SetBodies controls whether spawned enemies get physics bodies.
func (s *SpawnSystem) SetBodies(enabled bool) {
	s.bodies = enabled
}

// SetEnemySpec replaces the spec used for enemies spawned from now on.
func (s *SpawnSystem) SetEnemySpec(spec prefabs.EnemySpec) {
	s.enemy = spec
}

// SetSpawnerSpec updates the interval, placement and cap. Progress toward
// the next spawn is kept.
func (s *SpawnSystem) SetSpawnerSpec(spec prefabs.SpawnerSpec) {
	s.spawner.Configure(spec.Interval, spec.Base, spec.Spread)
	s.maxAlive = spec.MaxAlive
}

func (s *SpawnSystem) Spawner() *component.Spawner {
	return s.spawner
}

func (s *SpawnSystem) Update(w *ecs.World, ctx *Context) error {
	if s == nil || w == nil {
		return nil
	}

	req, ok := s.spawner.Update(ctx.Delta, s.rng)
	if !ok {
		return nil
	}

	if s.maxAlive > 0 && ecs.Count(w, component.EnemyTagComponent.Kind()) >= s.maxAlive {
		ctx.debugf("spawn: cap of %d reached, dropping spawn at (%.1f, %.1f)", s.maxAlive, req.Position.X, req.Position.Y)
		return nil
	}

	_, err := s.Spawn(w, ctx, req.Position)
	return err
}

// Spawn creates an enemy at pos outside of the interval and records it like
// a regular spawn.
func (s *SpawnSystem) Spawn(w *ecs.World, ctx *Context, pos cp.Vector) (ecs.Entity, error) {
	e, err := entity.NewEnemy(w, &s.enemy, pos, s.bodies)
	if err != nil {
		return 0, fmt.Errorf("spawn: %w", err)
	}
	s.spawned = append(s.spawned, e)

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: ecs.SpawnEvent{Entity: e, Position: pos}})
	ctx.debugf("spawn: enemy %s at (%.1f, %.1f)", e, pos.X, pos.Y)
	return e, nil
}

// Spawned returns every enemy handle in spawn order, including ones that
// have since been destroyed.
func (s *SpawnSystem) Spawned() []ecs.Entity {
	out := make([]ecs.Entity, len(s.spawned))
	copy(out, s.spawned)
	return out
}
