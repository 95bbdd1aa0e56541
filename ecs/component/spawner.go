package component

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
)

// SpawnRequest asks the caller to create one enemy at Position.
type SpawnRequest struct {
	Position cp.Vector
}

// Spawner owns the repeating spawn interval. Placement is
// Base + Spread*u applied to both axes, so every spawn point lies on the
// x == y diagonal.
type Spawner struct {
	Timer  common.Timer
	Base   float64
	Spread float64
	// FirstRun spawns on the very first update regardless of the timer.
	FirstRun bool

	started bool
}

func NewSpawner(interval time.Duration, base, spread float64, firstRun bool) *Spawner {
	return &Spawner{
		Timer:    common.NewTimer(interval, common.TimerRepeating),
		Base:     base,
		Spread:   spread,
		FirstRun: firstRun,
	}
}

// Update ticks the interval by delta and returns a request when it fires.
// At most one request is produced per call.
func (s *Spawner) Update(delta time.Duration, rng common.RandomSource) (SpawnRequest, bool) {
	first := s.FirstRun && !s.started
	s.started = true

	fired := s.Timer.Tick(delta)
	if !first && !fired {
		return SpawnRequest{}, false
	}

	p := s.Base + s.Spread*rng.NextUniform()
	return SpawnRequest{Position: cp.Vector{X: p, Y: p}}, true
}

// Configure replaces the interval and placement while keeping progress.
func (s *Spawner) Configure(interval time.Duration, base, spread float64) {
	s.Timer.SetDuration(interval)
	s.Base = base
	s.Spread = spread
}
