package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	collisionTypeTarget cp.CollisionType = iota + 1
	collisionTypeEnemy
)

// ContactSource yields the contacts produced since the last drain, in the
// order they happened.
type ContactSource interface {
	Drain() []ecs.ContactEvent
}

// PhysicsSystem mirrors physics bodies into a Chipmunk space, steps it and
// reports target/enemy overlaps as contact events. It is both the
// integrator and the ContactSource when attached.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	contacts ecs.ContactQueue

	// removing suppresses separate callbacks fired by RemoveShape.
	removing bool
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem() *PhysicsSystem {
	ps := &PhysicsSystem{
		space:    cp.NewSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
	ps.space.SetGravity(cp.Vector{})

	handler := ps.space.NewCollisionHandler(collisionTypeTarget, collisionTypeEnemy)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sys.record(ecs.ContactBegin, arb)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.removing {
			return
		}
		sys.record(ecs.ContactEnd, arb)
	}
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) record(kind ecs.ContactKind, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ps.contacts.Push(ecs.ContactEvent{Kind: kind, Subject: a, Other: b})
}

// Update syncs bodies from the world, steps the space by the context delta
// and writes dynamic body positions back to transforms.
func (ps *PhysicsSystem) Update(w *ecs.World, ctx *Context) error {
	if ps == nil || w == nil || ctx == nil {
		return nil
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)

	if dt := ctx.Delta.Seconds(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	return nil
}

// Drain returns the contacts recorded since the last call.
func (ps *PhysicsSystem) Drain() []ecs.ContactEvent {
	if ps == nil {
		return nil
	}
	return ps.contacts.Drain()
}

// Release removes e's body from the space without reporting the separation
// and drops any pending contacts that reference it.
func (ps *PhysicsSystem) Release(w *ecs.World, e ecs.Entity) {
	if ps == nil {
		return
	}
	ps.removeEntity(e)
	ps.contacts.Discard(e)
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Body = nil
		body.Shape = nil
	}
}

func (ps *PhysicsSystem) removeEntity(e ecs.Entity) {
	info, ok := ps.entities[e]
	if !ok {
		return
	}
	ps.removing = true
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if info.body != nil {
		ps.space.RemoveBody(info.body)
	}
	ps.removing = false
	delete(ps.entities, e)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; !ok {
			ps.createBody(w, e, pb, t)
		}
		if pb.Body == nil {
			return
		}

		if pb.Kinematic {
			pb.Body.SetPosition(t.Vector())
			return
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			pb.Body.SetVelocityVector(v.Vector())
		}
	})
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
	var body *cp.Body
	if pb.Kinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps enemies from spinning on contact.
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(t.Vector())
	ps.space.AddBody(body)

	radius := pb.Radius
	if radius <= 0 {
		radius = 1
	}
	shape := cp.NewCircle(body, radius, cp.Vector{})
	if pb.Sensor {
		shape.SetSensor(true)
	}
	switch {
	case ecs.Has(w, e, component.TargetTagComponent.Kind()):
		shape.SetCollisionType(collisionTypeTarget)
	case ecs.Has(w, e, component.EnemyTagComponent.Kind()):
		shape.SetCollisionType(collisionTypeEnemy)
	}
	ps.space.AddShape(shape)

	pb.Body = body
	pb.Shape = shape
	ps.entities[e] = &bodyInfo{body: body, shape: shape}
	ps.shapes[shape] = e
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Kinematic {
			return
		}
		t.SetVector(pb.Body.Position())
	})
}

// cleanupEntities drops bodies whose entity died or lost its PhysicsBody
// without going through Release.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeEntity(e)
		ps.contacts.Discard(e)
	}
}
