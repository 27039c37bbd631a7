// Package aco_test provides lightweight testing helpers shared across the
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality that already lives in focused test files.
package aco_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lukedodd/ant-tsp/aco"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used across tests; 0 selects the
	// package's fixed default stream, which is already reproducible.
	seedDet = int64(0)

	// seedAlt is a second deterministic seed for cross-seed comparisons.
	seedAlt = int64(1337)

	// epsSum is the tolerance for probability-normalization checks.
	epsSum = 1e-9
)

// -----------------------------------------------------------------------------
// Instance builders - deterministic matrices of various shapes
// -----------------------------------------------------------------------------

// twoTowns is the smallest legal instance: [[0,5],[5,0]].
// Its only cycle has true length 10 (5 out + 5 back).
func twoTowns() [][]float64 {
	return [][]float64{{0, 5}, {5, 0}}
}

// unitSquare returns the symmetric distance matrix of a unit square:
// edges cost 1, diagonals cost √2. The optimal cycle is the perimeter, cost 4.
func unitSquare() [][]float64 {
	var d = math.Sqrt2

	return [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	}
}

// euclid builds a symmetric Euclidean distance matrix from 2D points.
func euclid(pts [][2]float64) [][]float64 {
	var (
		n = len(pts)
		m = make([][]float64, n)
	)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			m[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}

	return m
}

// rippledCircle places n towns on a slightly rippled circle; the ripple breaks
// ties so instances have a unique optimum (the boundary order).
func rippledCircle(n int) [][]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		var (
			ang = 2 * math.Pi * float64(i) / float64(n)
			rad = 10 + 0.05*math.Sin(7*ang)
		)
		pts[i] = [2]float64{rad * math.Cos(ang), rad * math.Sin(ang)}
	}

	return euclid(pts)
}

// randomAsym builds a reproducible asymmetric matrix with weights in [1,100).
func randomAsym(n int, seed int64) [][]float64 {
	var (
		r = rand.New(rand.NewSource(seed))
		m = make([][]float64, n)
	)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				m[i][j] = 1 + 99*r.Float64()
			}
		}
	}

	return m
}

// -----------------------------------------------------------------------------
// Small assertion helpers
// -----------------------------------------------------------------------------

// mustNew builds a Solver or fails the test.
func mustNew(t *testing.T, matrix [][]float64, opts aco.Options) *aco.Solver {
	t.Helper()
	s, err := aco.New(matrix, opts)
	if err != nil {
		t.Fatalf("aco.New: %v", err)
	}

	return s
}

// fastOptions returns DefaultOptions shrunk for quick test runs.
func fastOptions(iterations int) aco.Options {
	opts := aco.DefaultOptions()
	opts.Iterations = iterations
	opts.Seed = seedDet

	return opts
}
