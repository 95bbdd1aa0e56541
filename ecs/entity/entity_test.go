package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

func TestNewEnemyComponents(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.EnemySpec{Speed: 10, Damage: 2, Health: 5, AttackPeriod: time.Second, Radius: 8}

	e, err := NewEnemy(w, spec, cp.Vector{X: 120, Y: 120}, false)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}

	if !ecs.Has(w, e, component.EnemyTagComponent.Kind()) {
		t.Fatalf("expected enemy tag")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 120 || tr.Y != 120 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || h.Current != 5 || h.Max != 5 {
		t.Fatalf("unexpected health %+v", h)
	}
	timer, ok := ecs.Get(w, e, component.AttackTimerComponent.Kind())
	if !ok {
		t.Fatalf("expected attack timer")
	}
	if timer.State.Phase != component.AttackIdle || timer.Period() != time.Second {
		t.Fatalf("unexpected timer phase=%v period=%v", timer.State.Phase, timer.Period())
	}
	if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
		t.Fatalf("expected no physics body without withBody")
	}
}

func TestNewEnemyWithBodyDefaultsMass(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.EnemySpec{Health: 1, AttackPeriod: time.Second, Radius: 4}

	e, err := NewEnemy(w, spec, cp.Vector{}, true)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("expected physics body")
	}
	if body.Mass != defaultBodyMass || body.Radius != 4 || body.Kinematic {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestNewTarget(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.TargetSpec{Health: 100, Radius: 16, Transform: prefabs.TransformSpec{X: 3, Y: 4}}

	e, err := NewTarget(w, spec, true)
	if err != nil {
		t.Fatalf("new target: %v", err)
	}
	if got, err := ecs.Unique(w, component.TargetTagComponent.Kind()); err != nil || got != e {
		t.Fatalf("expected unique target %s, got %s (%v)", e, got, err)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || !body.Kinematic || !body.Sensor {
		t.Fatalf("expected kinematic sensor body, got %+v", body)
	}
}

func TestNilSpecRejected(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewEnemy(w, nil, cp.Vector{}, false); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
	if _, err := NewTarget(w, nil, false); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}
