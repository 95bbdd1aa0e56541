package common

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies uniform values in [0, 1).
type RandomSource interface {
	NextUniform() float64
}

// Rand is a seeded PCG source so runs with the same seed are reproducible.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a source for seed. A zero seed uses the current time.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) NextUniform() float64 {
	return r.rng.Float64()
}

// SequenceRand replays a fixed list of values, cycling when exhausted.
// Values outside [0, 1) are clamped into range.
type SequenceRand struct {
	Values []float64
	next   int
}

func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (s *SequenceRand) NextUniform() float64 {
	if s == nil || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 1 - 1e-12
	}
	return v
}
