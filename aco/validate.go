// Package aco - validation helpers shared by the Solver constructor.
//
// This file checks Options combinations and the input distance matrix before
// any simulation work begins. All simulation-time failures are programming
// errors and panic instead (see solver.go); everything a caller can get wrong
// is rejected here, synchronously, with a sentinel from types.go.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n²) worst case over the matrix; no hidden allocations.
package aco

import "math"

// validateAll verifies Options and the distance matrix together.
// It returns n (town count) and m (colony size) on success.
//
// Contract:
//   - matrix must be non-nil, square, with n ≥ 2.
//   - every weight must be finite and ≥ 0; the diagonal is ignored by the
//     algorithm but must still be finite (a NaN anywhere is an input bug).
//   - floor(n·AntFactor) must be ≥ 1, otherwise ErrNoAnts.
//
// Complexity: O(n²) time, O(1) space.
func validateAll(matrix [][]float64, opts Options) (n, m int, err error) {
	// Stage 1: Options-only sanity.
	if err = validateOptions(opts); err != nil {
		return 0, 0, err
	}

	// Stage 2: matrix shape and values.
	if n, err = validateMatrix(matrix); err != nil {
		return 0, 0, err
	}

	// Stage 3: derived colony size. Running zero ants would silently produce
	// no tours at all, so it is a configuration error (not a no-op).
	m = int(float64(n) * opts.AntFactor)
	if m < 1 {
		return 0, 0, ErrNoAnts
	}

	return n, m, nil
}

// validateOptions checks the internal consistency of Options without touching
// the matrix. Ranges are documented on the Options fields.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// InitialTrail == 0 zeroes every desirability at the first step and the
	// transition rule has nothing to draw from; strictly positive only.
	if opts.InitialTrail <= 0 || math.IsNaN(opts.InitialTrail) {
		return ErrBadOption
	}
	if opts.Alpha < 0 || math.IsNaN(opts.Alpha) {
		return ErrBadOption
	}
	if opts.Beta < 0 || math.IsNaN(opts.Beta) {
		return ErrBadOption
	}
	// Evaporation is the RETAINED fraction; values outside [0,1] would grow
	// trails without bound or flip their sign.
	if opts.Evaporation < 0 || opts.Evaporation > 1 || math.IsNaN(opts.Evaporation) {
		return ErrBadOption
	}
	// Q == 0 deposits nothing, so with Evaporation < 1 the trails decay to
	// exact zero mid-run and the transition rule starves. Strictly positive.
	if opts.Q <= 0 || math.IsNaN(opts.Q) {
		return ErrBadOption
	}
	// AntFactor ≤ 0 can never yield a colony; the n-dependent m ≥ 1 check
	// happens in validateAll once n is known.
	if opts.AntFactor <= 0 || math.IsNaN(opts.AntFactor) {
		return ErrBadOption
	}
	if opts.RandomFactor < 0 || opts.RandomFactor > 1 || math.IsNaN(opts.RandomFactor) {
		return ErrBadOption
	}
	if opts.Iterations < 1 {
		return ErrBadOption
	}
	if opts.Workers < 0 {
		return ErrBadOption
	}

	return nil
}

// validateMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - every entry finite (no NaN/±Inf),
//   - no negative entries.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateMatrix(matrix [][]float64) (int, error) {
	if matrix == nil {
		return 0, ErrNilMatrix
	}
	var n = len(matrix)
	if n < 2 {
		return 0, ErrTooFewTowns
	}

	var (
		i, j int     // matrix indices
		w    float64 // entry under inspection
	)
	for i = 0; i < n; i++ {
		if len(matrix[i]) != n {
			return 0, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			w = matrix[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, ErrBadWeight
			}
			if w < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}
