// Package aco - the Solver: colony orchestration and the iteration loop.
//
// One Solver owns everything the simulation mutates: the trail matrix, the
// colony, the RNG stream(s), and the best tour ever seen. Each Solve call runs
// a bounded number of iterations; the best tour is Solver-lifetime state, so a
// caller that invokes Solve in a loop keeps refining the same answer forever.
//
// Per iteration, strictly barriered in this order (the probability model
// depends on it):
//  1. reset every ant with a fresh random start town;
//  2. construct all tours - the trail matrix is read-only during this phase;
//  3. evaporate the trail matrix, then deposit every ant's Q/length;
//  4. update the best tour on strict improvement.
//
// Complexity per Solve: O(Iterations · m · n²) time worst case, O(n² + m·n) space.
package aco

import (
	"math"
	"math/rand"
	"sync"
)

// Solver approximates shortest closed tours over a fixed distance matrix.
// Not safe for concurrent use; one Solve call at a time.
type Solver struct {
	opts Options

	n int // number of towns
	m int // number of ants

	graph  []float64    // linearized weights with the +1 ingest offset applied
	trails *trailMatrix // shared pheromone model
	ants   []ant        // the colony, allocated once per Solver

	pow func(base, exp float64) float64 // fastPow or math.Pow per Options

	rng    *rand.Rand   // shared stream (sequential construction)
	antRNG []*rand.Rand // per-ant substreams; non-nil iff Workers > 1

	probs       []float64   // per-step scratch probabilities (sequential)
	workerProbs [][]float64 // per-worker scratch (parallel)

	bestTour   []int   // best permutation ever completed; nil until one exists
	bestLength float64 // its length INCLUDING the ingest offset; +Inf if none
}

// New validates the configuration and builds a Solver over matrix.
//
// The matrix is copied; the caller keeps ownership of its slices. Every
// weight is ingested with +1 added, guaranteeing no zero-length edge (the
// transition rule divides by weights). Reported lengths undo this offset.
//
// Errors: sentinels from types.go; no simulation work happens on failure.
//
// Complexity: O(n²) time and space.
func New(matrix [][]float64, opts Options) (*Solver, error) {
	n, m, err := validateAll(matrix, opts)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		opts:       opts,
		n:          n,
		m:          m,
		graph:      make([]float64, n*n),
		trails:     newTrailMatrix(n),
		ants:       make([]ant, m),
		probs:      make([]float64, n),
		rng:        rngFromSeed(opts.Seed),
		bestLength: math.Inf(1),
	}

	// Ingest weights with the +1 offset, linearized for the hot loop.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s.graph[i*n+j] = matrix[i][j] + 1
		}
	}

	for i = 0; i < m; i++ {
		s.ants[i] = newAnt(n)
	}

	s.pow = fastPow
	if opts.ExactPow {
		s.pow = exactPow
	}

	// Parallel construction: one derived substream per ant, one scratch
	// buffer per worker. Derived once here so repeated Solve calls continue
	// the same streams.
	if w := s.workers(); w > 1 {
		s.antRNG = make([]*rand.Rand, m)
		for i = 0; i < m; i++ {
			s.antRNG[i] = deriveRNG(opts.Seed, uint64(i))
		}
		s.workerProbs = make([][]float64, w)
		for i = 0; i < w; i++ {
			s.workerProbs[i] = make([]float64, n)
		}
	}

	return s, nil
}

// workers returns the effective construction-phase parallelism: never more
// goroutines than ants, and ≤ 1 means the sequential reference behaviour.
func (s *Solver) workers() int {
	var w = s.opts.Workers
	if w > s.m {
		w = s.m
	}

	return w
}

// Solve resets the trail matrix to the initial constant and runs the
// configured number of iterations, then reports the best tour seen so far.
//
// The best tour is NOT reset between calls: it persists for the lifetime of
// the Solver and is monotonically non-increasing in length across calls.
//
// Complexity: O(Iterations · m · n²) worst case.
func (s *Solver) Solve() Result {
	s.trails.reset(s.opts.InitialTrail)

	var iteration int
	for iteration = 0; iteration < s.opts.Iterations; iteration++ {
		s.setupAnts()
		if s.workers() > 1 {
			s.moveAntsParallel()
		} else {
			s.moveAnts()
		}
		s.updateTrails()
		s.updateBest()
	}

	return Result{Tour: s.BestTour(), Length: s.BestLength()}
}

// BestTour returns an independent copy of the best tour found so far, or nil
// if Solve has not completed any iteration yet.
func (s *Solver) BestTour() []int {
	if s.bestTour == nil {
		return nil
	}

	return append([]int(nil), s.bestTour...)
}

// BestLength returns the true length of the best tour (ingest offset of one
// per edge, n in total, already subtracted), or +Inf if no tour exists yet.
// The value is stabilized to 1e-9 precision so it equals
// TourLength(matrix, BestTour()) exactly, not merely within rounding noise.
func (s *Solver) BestLength() float64 {
	if s.bestTour == nil {
		return math.Inf(1)
	}

	return round1e9(s.bestLength - float64(s.n))
}

// setupAnts resets every ant with a uniformly random start town. In parallel
// mode each ant draws its start from its own substream so the sequence stays
// independent of colony iteration order.
//
// Complexity: O(m·n).
func (s *Solver) setupAnts() {
	var (
		i int
		r *rand.Rand
	)
	for i = 0; i < s.m; i++ {
		r = s.rng
		if s.antRNG != nil {
			r = s.antRNG[i]
		}
		s.ants[i].reset(r.Intn(s.n))
	}
}

// moveAnts advances the whole colony one shared construction step at a time
// until every ant holds a complete tour. The stepwise structure lets all ants
// share one scratch probability buffer; the trail matrix is read-only here.
//
// Complexity: O(m·n²).
func (s *Solver) moveAnts() {
	var step, i int
	for step = 0; step < s.n-1; step++ {
		for i = 0; i < s.m; i++ {
			s.ants[i].visit(step+1, s.selectNextTown(&s.ants[i], step, s.rng, s.probs))
		}
	}
}

// moveAntsParallel splits the colony across workers. Within one construction
// phase ants only read shared state (trails, graph) and mutate private state,
// so each worker may run its ants to completion independently; the WaitGroup
// is the barrier that separates construction from the trail update.
//
// Determinism: every ant draws exclusively from its own substream, so the
// result is identical for a fixed seed regardless of scheduling.
func (s *Solver) moveAntsParallel() {
	var (
		wg      sync.WaitGroup
		w       = s.workers()
		perWork = (s.m + w - 1) / w // ants per worker, last chunk may be short
		lo, hi  int
		id      int
	)
	for id = 0; id < w; id++ {
		lo = id * perWork
		hi = lo + perWork
		if hi > s.m {
			hi = s.m
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int, probs []float64) {
			defer wg.Done()
			var i, step int
			for i = lo; i < hi; i++ {
				a := &s.ants[i]
				for step = 0; step < s.n-1; step++ {
					a.visit(step+1, s.selectNextTown(a, step, s.antRNG[i], probs))
				}
			}
		}(lo, hi, s.workerProbs[id])
	}
	wg.Wait()
}

// selectNextTown applies the transition rule for the ant standing at tour
// position step:
//
//  1. with probability RandomFactor, pick uniformly among unvisited towns;
//  2. otherwise fill probs with the normalized desirabilities of the
//     unvisited towns and run a roulette-wheel draw over them in town-index
//     order (fixed order keeps the draw deterministic for a given stream).
//
// A draw that selects nothing is a probability-normalization bug, not an
// input condition, and panics accordingly.
//
// Complexity: O(n).
func (s *Solver) selectNextTown(a *ant, step int, rng *rand.Rand, probs []float64) int {
	var town int

	// Exploration branch: a purely random unvisited town.
	if rng.Float64() < s.opts.RandomFactor {
		// unvisited towns remaining = n - (step+1); pick the t-th of them.
		var (
			t = rng.Intn(s.n - step - 1)
			j = -1
		)
		for town = 0; town < s.n; town++ {
			if !a.visited[town] {
				j++
				if j == t {
					return town
				}
			}
		}
	}

	// Weighted branch: roulette wheel over normalized desirabilities.
	s.computeProbs(a, step, probs)

	var (
		r   = rng.Float64()
		tot = 0.0
	)
	for town = 0; town < s.n; town++ {
		// Visited towns carry zero probability and must never be drawn,
		// not even when r lands exactly on a cumulative-sum boundary.
		if probs[town] == 0 {
			continue
		}
		tot += probs[town]
		if tot >= r {
			return town
		}
	}

	panic("aco: transition rule selected no town")
}

// computeProbs stores in probs the probability of moving from the ant's
// current town to each other town: zero for visited towns, desirability
// normalized over the unvisited ones otherwise. Ants like to follow stronger
// and shorter trails more.
//
// Complexity: O(n).
func (s *Solver) computeProbs(a *ant, step int, probs []float64) {
	var (
		i     = a.at(step) // ant's current town
		denom = 0.0
		j     int
	)
	for j = 0; j < s.n; j++ {
		if !a.visited[j] {
			denom += s.desirability(i, j)
		}
	}

	for j = 0; j < s.n; j++ {
		if a.visited[j] {
			probs[j] = 0
		} else {
			probs[j] = s.desirability(i, j) / denom
		}
	}
}

// desirability combines trail strength and inverse distance for the directed
// edge i→j: pow(trail, Alpha) · pow(1/weight, Beta). Weights carry the +1
// ingest offset, so the division is always well defined.
//
// Complexity: O(1).
func (s *Solver) desirability(i, j int) float64 {
	return s.pow(s.trails.at(i, j), s.opts.Alpha) * s.pow(1.0/s.graph[i*s.n+j], s.opts.Beta)
}

// updateTrails evaporates the whole matrix, then deposits every ant's
// contribution Q/tourLength onto the edges of its tour. Shorter tours deposit
// more, reinforcing good paths.
//
// Complexity: O(n² + m·n).
func (s *Solver) updateTrails() {
	s.trails.evaporate(s.opts.Evaporation)

	var i int
	for i = 0; i < s.m; i++ {
		s.trails.deposit(s.ants[i].tour, s.opts.Q/s.ants[i].tourLength(s.graph, s.n))
	}
}

// updateBest scans the colony's completed tours and replaces the best on
// strict improvement. +Inf as the initial best makes "no best exists yet"
// fall out of the same comparison.
//
// Complexity: O(m·n).
func (s *Solver) updateBest() {
	var (
		i      int
		length float64
	)
	for i = 0; i < s.m; i++ {
		length = s.ants[i].tourLength(s.graph, s.n)
		if length < s.bestLength {
			s.bestLength = length
			s.bestTour = append(s.bestTour[:0], s.ants[i].tour...)
		}
	}
}
