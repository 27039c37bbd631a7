// Package aco - public tour utilities.
//
// These helpers operate on the caller's ORIGINAL weights: unlike the Solver's
// internal accounting they never see the +1 ingest offset, so the value of
// TourLength over a Solver's best tour matches Result.Length.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package aco

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength computes the closed-cycle length of tour over matrix, including
// the wrap-around edge from the last town back to the first.
//
// Contract:
//   - matrix must be square n×n with finite, non-negative weights.
//   - tour must be a permutation of {0..n-1}.
//
// Complexity: O(n²) for validation, O(n) for the sum.
func TourLength(matrix [][]float64, tour []int) (float64, error) {
	n, err := validateMatrix(matrix)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += matrix[tour[i]][tour[i+1]]
	}
	sum += matrix[tour[n-1]][tour[0]]

	return round1e9(sum), nil
}

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n: no omissions, no duplicates, no out-of-range towns.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) != n || n <= 0 {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrTourIndex
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps reported lengths stable across platforms without affecting ordering.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
