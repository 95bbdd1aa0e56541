package ecs

import "errors"

var (
	ErrNoEntity         = errors.New("ecs: no entity with component")
	ErrMultipleEntities = errors.New("ecs: more than one entity with component")
)
