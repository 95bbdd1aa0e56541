package sim

import "errors"

var (
	ErrMissingClock  = errors.New("sim: missing clock")
	ErrMissingRandom = errors.New("sim: missing random source")
	// ErrNotEnemy is returned by Kill for handles that are not live enemies.
	ErrNotEnemy = errors.New("sim: not a live enemy")
)
