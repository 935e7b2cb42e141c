package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{math.NaN(), 0.2, 1, 0.2},
		{math.Inf(1), 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRand_KnownSequence(t *testing.T) {
	r := NewRand(1)
	r.Next()
	if r.State() != 16807 {
		t.Errorf("Expected state 16807 after one draw, got %d", r.State())
	}
	r.Next()
	if r.State() != 282475249 {
		t.Errorf("Expected state 282475249 after two draws, got %d", r.State())
	}
}

func TestRand_SeedNormalization(t *testing.T) {
	for _, seed := range []int64{0, -5, randModulus} {
		a, b := NewRand(seed), NewRand(1)
		if a.Next() != b.Next() {
			t.Errorf("seed %d: expected the sequence of seed 1", seed)
		}
	}
}

func TestRand_RangeAndFork(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		if v := r.Next(); v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}

	fork := r
	if fork.Next() != r.Next() {
		t.Error("Expected a copied generator to replay the same draws")
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to be 0")
	}
}

func TestMoveToward(t *testing.T) {
	from, to := V(0, 0), V(3, 4)

	p, moved := MoveToward(from, to, 2)
	if !NearlyEqual(moved, 2, 1e-12) || !NearlyEqual(p.Dist(from), 2, 1e-12) {
		t.Errorf("Expected a step of 2, got %v moved %v", p, moved)
	}

	p, moved = MoveToward(from, to, 10)
	if p != to || moved != 5 {
		t.Errorf("Expected to land exactly on target, got %v moved %v", p, moved)
	}

	if p, moved = MoveToward(from, to, -1); p != from || moved != 0 {
		t.Error("Expected no movement for a non-positive step")
	}
}

func TestVectorHelpers(t *testing.T) {
	if n := V(0, 0).Normalize(); !n.IsZero() {
		t.Error("Expected zero vector to normalize to zero")
	}
	if l := V(3, 4).ClampLen(1).Len(); !NearlyEqual(l, 1, 1e-12) {
		t.Errorf("Expected clamped length 1, got %v", l)
	}
	if c := ClampToRect(V(-1, 20), 10, 5); c != V(0, 5) {
		t.Errorf("Expected (0,5), got %v", c)
	}
}

func TestEllipse(t *testing.T) {
	c := V(5, 5)
	p := EllipsePoint(c, 4, 2, RingAngle(1, 4))
	if !NearlyEqual(p.X, 5, 1e-9) || !NearlyEqual(p.Y, 7, 1e-9) {
		t.Errorf("Expected (5,7), got %v", p)
	}
	if !EllipseContains(c, 4, 2, p) || EllipseContains(c, 4, 2, V(5, 7.1)) {
		t.Error("Unexpected containment result")
	}
}
