package aco

// Test bridge (white box) for private kernels.
//
// Purpose:
//   - Expose the unexported pow kernels, RNG derivation and per-step
//     probability state to the aco_test package only, without widening the
//     production API.
//
// Provided surface:
//   - *ForTest aliases/wrappers: thin pass-throughs, no side effects beyond
//     the wrapped calls (StepProbabilitiesForTest advances ant 0 on purpose).

var (
	// FastPowForTest exposes the approximate pow kernel.
	FastPowForTest = fastPow
	// ExactPowForTest exposes the exact counterpart.
	ExactPowForTest = exactPow
	// DeriveSeedForTest exposes the SplitMix64 seed mixer.
	DeriveSeedForTest = deriveSeed
)

// StepProbabilitiesForTest resets ant 0 at start, advances it steps towns
// using the solver's own stream and scratch, and returns a fresh copy of the
// normalized transition probabilities for the following step.
func (s *Solver) StepProbabilitiesForTest(start, steps int) []float64 {
	a := &s.ants[0]
	a.reset(start)
	for step := 0; step < steps; step++ {
		a.visit(step+1, s.selectNextTown(a, step, s.rng, s.probs))
	}

	probs := make([]float64, s.n)
	s.computeProbs(a, steps, probs)

	return probs
}

// TrailCellForTest reads one pheromone cell.
func (s *Solver) TrailCellForTest(i, j int) float64 { return s.trails.at(i, j) }

// ResetTrailsForTest fills the trail matrix with c.
func (s *Solver) ResetTrailsForTest(c float64) { s.trails.reset(c) }

// EvaporateForTest applies one evaporation pass with retention rho.
func (s *Solver) EvaporateForTest(rho float64) { s.trails.evaporate(rho) }

// DepositForTest deposits amount along tour's edges (wrap-around included).
func (s *Solver) DepositForTest(tour []int, amount float64) { s.trails.deposit(tour, amount) }

// DesirabilityForTest exposes the combined trail × inverse-distance score.
func (s *Solver) DesirabilityForTest(i, j int) float64 { return s.desirability(i, j) }
