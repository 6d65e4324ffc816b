// Package sim implements the deterministic ghostbird simulation: a pure
// state-transition engine with LCG-driven collision outcomes. Nothing in
// this package performs I/O or holds hidden state; every function maps
// values to values so that identical seeds and inputs reproduce identical
// runs, which the replay ghosts depend on.
package sim

// Linear congruential generator parameters (the classic glibc constants).
const (
	rngModulus    = 1 << 31
	rngMultiplier = 1103515245
	rngIncrement  = 12345
)

// NextSeed advances the LCG by one step.
// Seeds live in [0, 2^31); see NormalizeSeed for arbitrary inputs.
func NextSeed(seed int64) int64 {
	return (rngMultiplier*seed + rngIncrement) % rngModulus
}

// Scale maps a raw LCG value into [-1, 1].
func Scale(h int64) float64 {
	return 2*float64(h)/float64(rngModulus-1) - 1
}

// NormalizeSeed folds an arbitrary int64 into the LCG's state range.
func NormalizeSeed(seed int64) int64 {
	seed %= rngModulus
	if seed < 0 {
		seed += rngModulus
	}
	return seed
}
