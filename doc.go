// Package anttsp approximates Travelling Salesman tours with an
// Ant Colony Optimization (Ant System) metaheuristic.
//
// 🚀 What is ant-tsp?
//
//	A small, deterministic-by-seed library that simulates a colony of
//	artificial ants walking a town-to-town distance matrix:
//		• Trail model: pheromone matrix with evaporation & deposit
//		• Transition rule: trail strength × inverse distance, roulette-wheel
//		• Exploration: tunable probability of a purely random hop
//		• Best tracking: the shortest tour ever seen survives across solves
//
// ✨ Why choose ant-tsp?
//
//   - Simple API – one Solver, one Options struct, one Solve call
//   - Reproducible – fixed seed ⇒ identical tours, even with workers > 1
//   - Pure Go – no cgo, no hidden deps
//   - Fast – approximate pow on the hot path, trading accuracy it never needed
//
// Everything is organized under three packages:
//
//	aco/        — the colony: trails, ants, transition rule, iteration loop
//	tspfile/    — adjacency-matrix and TSPLIB EXPLICIT matrix parsing
//	cmd/anttsp/ — the command-line driver (load file, solve, print best)
//
// Quick start:
//
//	m, _ := tspfile.LoadMatrix("towns.txt")
//	s, _ := aco.New(m, aco.DefaultOptions())
//	res := s.Solve()
//	fmt.Println(res.Length, res.Tour)
//
// This is a heuristic, not an exact solver: it converges toward short tours
// and usually settles well before the default 2000 iterations, but it offers
// no optimality guarantee.
//
//	go get github.com/lukedodd/ant-tsp
package anttsp
