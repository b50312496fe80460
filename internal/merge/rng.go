package merge

// simpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator) so its state can be
// captured and restored by snapshots.
type simpleRNG struct {
	state uint64
}

// newSimpleRNG creates a new RNG with the given seed.
func newSimpleRNG(seed int64) *simpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &simpleRNG{state: s}
}

// next generates the next random uint64.
func (r *simpleRNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// intn returns a random int in [0, n).
func (r *simpleRNG) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n)) //#nosec G115 -- n is always positive
}
