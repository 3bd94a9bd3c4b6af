package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Fixed always returns the same number, capped to n-1
// Useful to make seeding deterministic in tests.
type Fixed int

// Intn returns the fixed number
func (f Fixed) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}
