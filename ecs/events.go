package ecs

import "github.com/jakecoffman/cp"

// EventType identifies the payload carried by an Event.
type EventType string

const (
	EventSpawn   EventType = "spawn"
	EventDamage  EventType = "damage"
	EventDespawn EventType = "despawn"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// SpawnEvent is recorded when an enemy is created.
type SpawnEvent struct {
	Entity   Entity
	Position cp.Vector
}

// DamageEvent is recorded every time an attack timer fires. Health is the
// target's health after the damage was applied.
type DamageEvent struct {
	Enemy  Entity
	Target Entity
	Amount int
	Health int
}

// DespawnEvent is recorded when an enemy is destroyed.
type DespawnEvent struct {
	Entity Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
