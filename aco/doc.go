// Package aco approximates Travelling Salesman tours with Ant Colony
// Optimization (the Ant System of Dorigo et al.).
//
// 🚀 What is ACO?
//
//	A colony of artificial ants repeatedly constructs candidate tours over a
//	town-to-town distance matrix. Each ant walks town to town, preferring
//	edges that are short and that previous good tours have marked with
//	pheromone; completed tours then reinforce their own edges in proportion
//	to their quality while old trail slowly evaporates. Over iterations the
//	colony converges toward short closed tours.
//
// ✨ Key features:
//   - the full Ant System update rule: uniform trail init, retention-style
//     evaporation, per-ant Q/length deposits with wrap-around
//   - tunable exploration: RandomFactor short-circuits the weighted rule
//     with a purely random unvisited town
//   - approximate pow on the probability hot path (ExactPow opts out)
//   - process-lifetime best: repeated Solve calls keep refining one answer
//   - optional parallel tour construction with per-ant RNG substreams;
//     deterministic for a fixed seed at any worker count
//
// ⚙️ Usage:
//
//	import "github.com/lukedodd/ant-tsp/aco"
//
//	opts := aco.DefaultOptions() // Dorigo's suggested parameters
//	opts.Seed = 42               // reproducible runs
//
//	s, err := aco.New(matrix, opts) // matrix: [][]float64, n×n, weights ≥ 0
//	if err != nil {
//	  // ErrNonSquare, ErrNegativeWeight, ErrNoAnts, ...
//	}
//	res := s.Solve()
//	fmt.Println(res.Length, res.Tour)
//
// Performance:
//
//   - Time:   O(Iterations · m · n²), m = floor(n·AntFactor)
//   - Memory: O(n² + m·n)
//
// The weights are ingested with +1 added to every edge so the inverse-distance
// term can never divide by zero; every reported length has that offset
// subtracted again, so callers only ever see true lengths.
package aco
