// Package aco_test - benchmarks for the colony hot path.
//
// Policy:
//   - Deterministic geometry (rippled circles) and fixed seeds.
//   - Pre-build all inputs outside the timer; measure only Solve.
//   - Iteration counts sized to finish comfortably on CI.
package aco_test

import (
	"testing"

	"github.com/lukedodd/ant-tsp/aco"
)

// benchSolve runs one Solve per b.N iteration over a fresh Solver so the
// process-lifetime best never short-circuits later runs.
func benchSolve(b *testing.B, n, iterations, workers int, exactPow bool) {
	b.Helper()
	matrix := rippledCircle(n)

	opts := aco.DefaultOptions()
	opts.Iterations = iterations
	opts.Seed = seedAlt
	opts.Workers = workers
	opts.ExactPow = exactPow

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := aco.New(matrix, opts)
		if err != nil {
			b.Fatalf("aco.New: %v", err)
		}
		_ = s.Solve()
	}
}

// BenchmarkSolve_n20 measures the sequential reference configuration.
func BenchmarkSolve_n20(b *testing.B) { benchSolve(b, 20, 50, 0, false) }

// BenchmarkSolve_n20_ExactPow isolates the cost of math.Pow on the hot path.
func BenchmarkSolve_n20_ExactPow(b *testing.B) { benchSolve(b, 20, 50, 0, true) }

// BenchmarkSolve_n20_Workers4 measures the parallel construction phase.
func BenchmarkSolve_n20_Workers4(b *testing.B) { benchSolve(b, 20, 50, 4, false) }

// BenchmarkSolve_n50 scales the instance to stress the O(m·n²) inner loops.
func BenchmarkSolve_n50(b *testing.B) { benchSolve(b, 50, 20, 0, false) }
