package common

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		va, vb := a.NextUniform(), b.NextUniform()
		if va != vb {
			t.Fatalf("draw %d differs: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
	}
}

func TestSequenceRand(t *testing.T) {
	s := NewSequenceRand(0.25, -1, 1)
	want := []float64{0.25, 0, 1 - 1e-12, 0.25}
	for i, w := range want {
		if got := s.NextUniform(); got != w {
			t.Fatalf("draw %d: expected %v, got %v", i, w, got)
		}
	}
	var empty *SequenceRand
	if empty.NextUniform() != 0 {
		t.Fatalf("nil sequence should yield 0")
	}
}
