// Package aco - public types, sentinel errors and configuration defaults.
//
// Design principles:
//   - Strict sentinels: every rejectable input maps to exactly one error below;
//     no fmt.Errorf in library code.
//   - Options is a plain struct with a DefaultOptions() constructor; zero
//     machinery, easy to tweak field by field.
//   - All randomness is governed by Options.Seed; there is no time-based
//     source anywhere in the package.
package aco

import "errors"

var (
	// ErrNilMatrix indicates the distance matrix was nil.
	ErrNilMatrix = errors.New("aco: distance matrix must be non-nil")
	// ErrNonSquare indicates the distance matrix is not n×n.
	ErrNonSquare = errors.New("aco: distance matrix must be square")
	// ErrTooFewTowns indicates a matrix of fewer than two towns.
	ErrTooFewTowns = errors.New("aco: need at least two towns")
	// ErrNegativeWeight indicates a negative edge weight in the input matrix.
	ErrNegativeWeight = errors.New("aco: negative edge weight")
	// ErrBadWeight indicates a NaN or infinite edge weight in the input matrix.
	ErrBadWeight = errors.New("aco: edge weight must be finite")
	// ErrNoAnts indicates floor(n·AntFactor) rounded down to an empty colony.
	ErrNoAnts = errors.New("aco: ant factor too small: colony would be empty")
	// ErrBadOption indicates an Options field outside its documented range.
	ErrBadOption = errors.New("aco: option value out of range")
	// ErrTourIndex indicates a tour referencing a town outside [0..n-1].
	ErrTourIndex = errors.New("aco: tour index out of range")
	// ErrNotPermutation indicates a tour that is not a permutation of {0..n-1}.
	ErrNotPermutation = errors.New("aco: tour is not a permutation of all towns")
)

// Default parameter values, as suggested by Dorigo's Ant System paper and
// confirmed by experimentation in the reference implementation.
const (
	// DefaultInitialTrail is the uniform pheromone level c set at solve start.
	DefaultInitialTrail = 1.0
	// DefaultAlpha weights trail strength in the transition rule.
	DefaultAlpha = 1.0
	// DefaultBeta weights the greedy inverse-distance preference.
	DefaultBeta = 5.0
	// DefaultEvaporation is the fraction of trail RETAINED each iteration.
	// Note the inverted naming versus most ACO literature: the matrix is
	// multiplied by this factor, so 0.5 means half the trail survives.
	DefaultEvaporation = 0.5
	// DefaultQ scales per-ant deposits: each ant adds Q/tourLength per edge.
	DefaultQ = 500.0
	// DefaultAntFactor sizes the colony: m = floor(n · AntFactor).
	DefaultAntFactor = 0.8
	// DefaultRandomFactor is pr, the probability of a purely random hop.
	DefaultRandomFactor = 0.01
	// DefaultIterations bounds one Solve call; results typically settle by 500.
	DefaultIterations = 2000
)

// Options configures a Solver.
//
// Fields:
//   - InitialTrail — pheromone constant c written by every trail reset. > 0;
//     a zero start leaves the transition rule with nothing to draw from.
//   - Alpha, Beta  — transition-rule exponents (trail vs. greedy). ≥ 0.
//   - Evaporation  — trail fraction retained per iteration, in [0,1].
//   - Q            — deposit scale; each completed ant adds Q/length. > 0;
//     without deposits the retained trails decay to exact zero mid-run.
//   - AntFactor    — colony size factor: m = floor(n·AntFactor). > 0, and
//     large enough that m ≥ 1 for the given n.
//   - RandomFactor — pr, probability of skipping the weighted rule in favor
//     of a uniformly random unvisited town, in [0,1].
//   - Iterations   — iterations per Solve call. ≥ 1.
//   - Seed         — RNG seed; 0 selects a fixed default stream, so the zero
//     value is already deterministic. No hidden entropy.
//   - ExactPow     — use math.Pow instead of the approximate bit-trick pow.
//     Only throughput changes; the colony self-corrects either way.
//   - Workers      — number of goroutines constructing tours. ≤ 1 keeps the
//     reference single-stream sequential behaviour; > 1 gives each ant an
//     independent derived RNG substream so runs stay reproducible.
type Options struct {
	InitialTrail float64
	Alpha        float64
	Beta         float64
	Evaporation  float64
	Q            float64
	AntFactor    float64
	RandomFactor float64
	Iterations   int
	Seed         int64
	ExactPow     bool
	Workers      int
}

// DefaultOptions returns the reference parameter set.
func DefaultOptions() Options {
	return Options{
		InitialTrail: DefaultInitialTrail,
		Alpha:        DefaultAlpha,
		Beta:         DefaultBeta,
		Evaporation:  DefaultEvaporation,
		Q:            DefaultQ,
		AntFactor:    DefaultAntFactor,
		RandomFactor: DefaultRandomFactor,
		Iterations:   DefaultIterations,
	}
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Tour is the best permutation of town indices found so far, interpreted
	// as a closed cycle (the last town connects back to the first). It is an
	// independent copy; mutating it does not affect the Solver.
	Tour []int

	// Length is the true length of Tour under the caller's original weights
	// (the +1-per-edge ingest offset has already been subtracted).
	Length float64
}
