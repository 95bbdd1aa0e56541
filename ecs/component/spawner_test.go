package component

import (
	"testing"
	"time"

	"github.com/milk9111/horde/common"
)

func TestSpawnerInterval(t *testing.T) {
	cases := []struct {
		name      string
		firstRun  bool
		deltas    []time.Duration
		wantSteps []int
	}{
		{
			name:      "fires_each_second",
			deltas:    steps(100*time.Millisecond, 35),
			wantSteps: []int{9, 19, 29},
		},
		{
			name:      "one_request_per_call",
			deltas:    []time.Duration{2500 * time.Millisecond, 100 * time.Millisecond, 400 * time.Millisecond},
			wantSteps: []int{0, 2},
		},
		{
			name:      "first_run",
			firstRun:  true,
			deltas:    steps(500*time.Millisecond, 4),
			wantSteps: []int{0, 1, 3},
		},
		{
			name:      "zero_deltas",
			deltas:    steps(0, 10),
			wantSteps: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSpawner(time.Second, 100, 100, c.firstRun)
			rng := common.NewSequenceRand(0.5)
			var got []int
			for i, d := range c.deltas {
				if _, ok := s.Update(d, rng); ok {
					got = append(got, i)
				}
			}
			if len(got) != len(c.wantSteps) {
				t.Fatalf("expected spawns at %v, got %v", c.wantSteps, got)
			}
			for i := range got {
				if got[i] != c.wantSteps[i] {
					t.Fatalf("expected spawns at %v, got %v", c.wantSteps, got)
				}
			}
		})
	}
}

func TestSpawnerPlacement(t *testing.T) {
	s := NewSpawner(time.Second, 100, 100, false)
	rng := common.NewSequenceRand(0, 0.25, 0.5, 0.999999)
	want := []float64{100, 125, 150, 100 + 100*0.999999}

	for i, w := range want {
		req, ok := s.Update(time.Second, rng)
		if !ok {
			t.Fatalf("spawn %d: expected a request", i)
		}
		if req.Position.X != req.Position.Y {
			t.Fatalf("spawn %d: off diagonal %v", i, req.Position)
		}
		if req.Position.X < 100 || req.Position.X >= 200 {
			t.Fatalf("spawn %d: out of range %v", i, req.Position)
		}
		if req.Position.X != w {
			t.Fatalf("spawn %d: expected %v, got %v", i, w, req.Position.X)
		}
	}
}

func TestSpawnerPlacementRandom(t *testing.T) {
	s := NewSpawner(time.Second, 100, 100, false)
	rng := common.NewRand(7)
	for i := 0; i < 1000; i++ {
		req, ok := s.Update(time.Second, rng)
		if !ok {
			t.Fatalf("spawn %d: expected a request", i)
		}
		if req.Position.X != req.Position.Y || req.Position.X < 100 || req.Position.X >= 200 {
			t.Fatalf("spawn %d: bad position %v", i, req.Position)
		}
	}
}

func TestSpawnerConfigureKeepsProgress(t *testing.T) {
	s := NewSpawner(time.Second, 100, 100, false)
	rng := common.NewSequenceRand(0)
	s.Update(600*time.Millisecond, rng)
	s.Configure(800*time.Millisecond, 0, 10)
	req, ok := s.Update(200*time.Millisecond, rng)
	if !ok {
		t.Fatalf("expected spawn once progress reaches the new interval")
	}
	if req.Position.X != 0 {
		t.Fatalf("expected new base, got %v", req.Position)
	}
}

func steps(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}
