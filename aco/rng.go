// Package aco - RNG utilities for the colony.
//
// This file centralizes deterministic random generation for the Solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: O(1) helpers, created during setup, never in hot loops.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The sequential solver shares one
//     stream across all ants (the reference behaviour); the parallel solver
//     gives every ant its own derived substream via deriveRNG, so tour
//     construction stays reproducible under any goroutine scheduling.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Parallel construction needs one independent substream per ant; naive
//     seed+i derivations correlate badly, so we run a SplitMix64-style
//     avalanche mix over (parent, stream).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants and rationale.
	var x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates the independent deterministic substream for one ant,
// keyed by the Solver's configured seed and the ant's index. Unlike a shared
// stream, the substream consumed by ant i never depends on how many draws the
// other ants made, which is what makes parallel construction reproducible.
//
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}
