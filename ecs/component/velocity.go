package component

import "github.com/jakecoffman/cp"

// Velocity is in world units per second.
type Velocity struct {
	X float64
	Y float64
}

func (v Velocity) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func (v *Velocity) SetVector(vec cp.Vector) {
	v.X = vec.X
	v.Y = vec.Y
}

var VelocityComponent = NewComponent[Velocity]()
