// Package aco - the pheromone trail model.
//
// The trail matrix is the colony's shared memory: every completed tour
// reinforces its own edges, evaporation forgets everything slowly, and the
// transition rule reads the result as a desirability signal. The matrix is
// stored as a linearized tau[i*n+j] buffer to keep the per-step probability
// loop free of pointer chasing (the same layout the local-search engines use
// for prefetched weights).
//
// Invariant: values never become negative. Evaporation multiplies by a factor
// in [0,1] and deposits only add non-negative contributions; both are enforced
// upstream by validateOptions and the Q ≥ 0 option range.
package aco

// trailMatrix is an n×n matrix of pheromone intensities.
type trailMatrix struct {
	n   int       // number of towns (matrix order)
	tau []float64 // linearized intensities; tau[i*n+j] is the i→j trail
}

// newTrailMatrix allocates an n×n trail matrix with all cells zero.
// reset must be called before first use (Solve does this).
//
// Complexity: O(n²) space.
func newTrailMatrix(n int) *trailMatrix {
	return &trailMatrix{n: n, tau: make([]float64, n*n)}
}

// reset fills every cell with the constant c.
// Idempotent: after any sequence of mutations, reset(c) restores every cell
// to exactly c.
//
// Complexity: O(n²).
func (t *trailMatrix) reset(c float64) {
	for i := range t.tau {
		t.tau[i] = c
	}
}

// evaporate multiplies every cell by rho, the RETAINED fraction in [0,1].
// The parameter keeps the reference naming ("evaporation coefficient") even
// though it is applied as a retention multiplier; see Options.Evaporation.
//
// Complexity: O(n²).
func (t *trailMatrix) evaporate(rho float64) {
	for i := range t.tau {
		t.tau[i] *= rho
	}
}

// deposit adds amount to the trail of every consecutive directed edge of a
// completed tour, including the wrap-around edge from the last town back to
// the first.
//
// Contract: tour is a permutation of {0..n-1}; amount ≥ 0.
//
// Complexity: O(n).
func (t *trailMatrix) deposit(tour []int, amount float64) {
	var (
		i    int // position along the tour
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		t.tau[tour[i]*t.n+tour[i+1]] += amount
	}
	// Close the cycle.
	t.tau[tour[last]*t.n+tour[0]] += amount
}

// at returns the trail intensity of the directed edge i→j.
//
// Complexity: O(1).
func (t *trailMatrix) at(i, j int) float64 {
	return t.tau[i*t.n+j]
}
