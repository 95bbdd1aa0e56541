// Package component holds the data attached to horde entities and the typed
// kinds an ecs.World stores it under.
package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. Zero is never assigned.
type ComponentID uint32

var lastComponentID atomic.Uint32

// Kind is the type-erased identity of a component kind, used where kinds of
// different component types are mixed, such as multi-component queries.
type Kind interface {
	ID() ComponentID
	Name() string
}

// ComponentKind identifies the store for components of type T. The zero value
// is invalid and rejected by ecs.Add.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Name is the Go type name of T, for logs and errors.
func (k ComponentKind[T]) Name() string { return k.name }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the registration of a component type, declared once per
// type as a package variable.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
