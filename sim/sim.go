package sim

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/ecs/system"
	"github.com/milk9111/horde/prefabs"
)

// Simulation owns the world and runs the fixed step pipeline. It is driven
// from a single goroutine; callers tick the clock before every Step.
type Simulation struct {
	world  *ecs.World
	clock  common.Clock
	logger *log.Logger
	debug  bool

	target   ecs.Entity
	contacts *ecs.ContactQueue

	spawn     *system.SpawnSystem
	physics   *system.PhysicsSystem
	scheduler *system.Scheduler

	steps int
}

func New(cfg Config) (*Simulation, error) {
	if cfg.Clock == nil {
		return nil, ErrMissingClock
	}
	if cfg.Random == nil {
		return nil, ErrMissingRandom
	}
	if err := cfg.Spawner.Validate(); err != nil {
		return nil, fmt.Errorf("sim: spawner: %w", err)
	}
	if err := cfg.Enemy.Validate(); err != nil {
		return nil, fmt.Errorf("sim: enemy: %w", err)
	}
	if err := cfg.Target.Validate(); err != nil {
		return nil, fmt.Errorf("sim: target: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	contacts := cfg.Contacts
	if contacts == nil {
		contacts = &ecs.ContactQueue{}
	}

	w := ecs.NewWorld()
	target, err := entity.NewTarget(w, &cfg.Target, cfg.Physics)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		world:    w,
		clock:    cfg.Clock,
		logger:   logger,
		debug:    cfg.Settings.Debug,
		target:   target,
		contacts: contacts,
		spawn:    system.NewSpawnSystem(cfg.Spawner, cfg.Enemy, cfg.Random),
	}
	s.spawn.SetBodies(cfg.Physics)

	// Physics contacts drain before scripted ones.
	var (
		integrate system.System = system.NewMovementSystem()
		sources   []system.ContactSource
		releasers = []system.Releaser{
			system.ReleaseFunc(func(_ *ecs.World, e ecs.Entity) { contacts.Discard(e) }),
		}
	)
	if cfg.Physics {
		s.physics = system.NewPhysicsSystem()
		integrate = s.physics
		sources = append(sources, s.physics)
		releasers = append(releasers, s.physics)
	}
	sources = append(sources, contacts)

	s.scheduler = system.NewScheduler(
		s.spawn,
		system.NewPursuitSystem(),
		integrate,
		&system.CombatStage{
			Combat:  system.NewCombatSystem(cfg.Settings.LenientContacts),
			Sources: sources,
		},
		system.NewDespawnSystem(releasers...),
	)

	return s, nil
}

func (s *Simulation) context() *system.Context {
	return &system.Context{
		Delta:  s.clock.Delta(),
		Now:    s.clock.Elapsed(),
		Target: s.target,
		Logger: s.logger,
		Debug:  s.debug,
	}
}

// Step runs one fixed step using the clock's current delta: spawn, pursue,
// integrate, resolve contacts and damage, then despawn. Any error is an
// invariant violation and leaves the simulation unusable.
func (s *Simulation) Step() error {
	s.steps++
	if err := s.scheduler.Update(s.world, s.context()); err != nil {
		return s.stepErr(err)
	}
	return nil
}

func (s *Simulation) stepErr(err error) error {
	return fmt.Errorf("sim: step %d: %w", s.steps, err)
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Target() ecs.Entity {
	return s.target
}

// Elapsed is the clock time of the current step.
func (s *Simulation) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Steps is the number of Step calls so far.
func (s *Simulation) Steps() int {
	return s.steps
}

// Contacts returns the manual contact bus.
func (s *Simulation) Contacts() *ecs.ContactQueue {
	return s.contacts
}

// Physics returns the attached physics system, or nil.
func (s *Simulation) Physics() *system.PhysicsSystem {
	return s.physics
}

func (s *Simulation) TargetHealth() int {
	h, ok := ecs.Get(s.world, s.target, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	return h.Current
}

func (s *Simulation) TargetPosition() cp.Vector {
	t, ok := ecs.Get(s.world, s.target, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return t.Vector()
}

// SetTargetPosition moves the target; pursuit reads it on the next step.
func (s *Simulation) SetTargetPosition(pos cp.Vector) {
	if t, ok := ecs.Get(s.world, s.target, component.TransformComponent.Kind()); ok {
		t.SetVector(pos)
	}
}

// DrainEvents returns the spawn, damage and despawn events recorded since
// the last call.
func (s *Simulation) DrainEvents() []ecs.Event {
	return s.world.Events().Drain()
}

// Enemies returns the live enemies in ascending entity order.
func (s *Simulation) Enemies() []ecs.Entity {
	return s.world.Query(component.EnemyTagComponent.Kind())
}

// Spawned returns every enemy ever spawned, in spawn order.
func (s *Simulation) Spawned() []ecs.Entity {
	return s.spawn.Spawned()
}

// SpawnEnemy creates an enemy at pos immediately, outside of the interval.
func (s *Simulation) SpawnEnemy(pos cp.Vector) (ecs.Entity, error) {
	return s.spawn.Spawn(s.world, s.context(), pos)
}

// Kill drains e's health; the despawn system removes it on the next step.
func (s *Simulation) Kill(e ecs.Entity) error {
	if !ecs.Has(s.world, e, component.EnemyTagComponent.Kind()) {
		return fmt.Errorf("%w: %s", ErrNotEnemy, e)
	}
	h, ok := ecs.Get(s.world, e, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("%w: %s has no health", ErrNotEnemy, e)
	}
	h.Current = 0
	return nil
}

// NearestEnemy returns the live enemy closest to pos. Ties go to the lower
// entity.
func (s *Simulation) NearestEnemy(pos cp.Vector) (ecs.Entity, bool) {
	var (
		best  ecs.Entity
		found bool
		dist  = math.Inf(1)
	)
	ecs.ForEach2(s.world, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, t *component.Transform) {
		if d := t.Vector().DistanceSq(pos); d < dist {
			best, dist, found = e, d, true
		}
	})
	return best, found
}

func (s *Simulation) SetEnemySpec(spec prefabs.EnemySpec) {
	s.spawn.SetEnemySpec(spec)
}

func (s *Simulation) SetSpawnerSpec(spec prefabs.SpawnerSpec) {
	s.spawn.SetSpawnerSpec(spec)
}
