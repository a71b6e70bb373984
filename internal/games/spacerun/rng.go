package spacerun

// Source is the random draw interface used by the spawners.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Its whole state is one word so snapshots can capture it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants), output mixed to hide weak low bits
	r.state = r.state*6364136223846793005 + 1442695040888963407
	x := r.state
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x
}

// Intn returns a random int in [0, n). Non-positive n yields 0, which
// collapses spawn ranges on scenes narrower than a margin.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
