package component

// Enemy holds the fixed combat constants of a hostile actor.
type Enemy struct {
	// Speed is the pursuit speed in world units per second.
	Speed float64
	// Damage is subtracted from the target every time the attack timer fires.
	Damage int
}

var EnemyComponent = NewComponent[Enemy]()
