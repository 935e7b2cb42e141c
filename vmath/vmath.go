package vmath

import "math"

// --- Scalar Helpers ---

// Clamp limits v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp returns a + (b-a)*t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NearlyEqual compares floats with an absolute tolerance
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Randomness ---

// Park-Miller minimal standard generator constants
const (
	randModulus    = 2147483647 // 2^31 - 1
	randMultiplier = 16807
)

// Rand is a seeded multiplicative congruential generator.
// The zero value is not valid; use NewRand. Rand is a plain value, so copying it
// forks the sequence: both copies produce identical draws from that point on.
type Rand struct {
	state int64
}

// NewRand normalizes seed into [1, 2^31-2]; non-positive seeds become 1
func NewRand(seed int64) Rand {
	if seed <= 0 {
		seed = 1
	}
	s := seed % randModulus
	if s == 0 {
		s = 1
	}
	return Rand{state: s}
}

// Next advances the generator and returns a value in [0, 1)
func (r *Rand) Next() float64 {
	if r.state <= 0 {
		r.state = 1
	}
	r.state = (r.state * randMultiplier) % randModulus
	return float64(r.state-1) / float64(randModulus-1)
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// State exposes the raw generator state for snapshots and equality checks
func (r Rand) State() int64 {
	return r.state
}
