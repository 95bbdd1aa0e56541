package system

import "errors"

var (
	// ErrUnknownEnemy is returned when a contact references an entity that
	// is dead or is an enemy without an attack timer.
	ErrUnknownEnemy = errors.New("system: unknown enemy in contact")
	// ErrTargetMismatch is returned when the injected target handle is not
	// the unique target in the world.
	ErrTargetMismatch = errors.New("system: target handle mismatch")
	// ErrMissingComponent is returned when an entity lacks a component a
	// system requires of it.
	ErrMissingComponent = errors.New("system: missing component")
)
