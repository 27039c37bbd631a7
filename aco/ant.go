// Package aco - the ant agent.
//
// An ant is nothing but a tour under construction plus a visited set kept in
// sync with the tour's filled prefix. It holds no reference to shared state:
// the Solver owns the construction cursor and passes the step explicitly into
// every operation, so an ant can be driven from any goroutine that owns it.
package aco

// ant incrementally constructs one candidate tour per iteration.
//
// Lifecycle: reset (Empty→Building) assigns a random start town at position 0;
// each visit call appends one town (Building→Building); after n-1 visits the
// tour is a permutation of {0..n-1} and the ant is Complete.
type ant struct {
	tour    []int  // ordered town indices; positions [0..step] are filled
	visited []bool // visited[t] ⇔ t appears in the filled prefix of tour
}

// newAnt allocates an ant for an n-town problem.
//
// Complexity: O(n) space.
func newAnt(n int) ant {
	return ant{tour: make([]int, n), visited: make([]bool, n)}
}

// reset clears the visited set and places the ant at start (tour position 0).
// Reusing the buffers is much cheaper than fresh allocations each iteration.
//
// Complexity: O(n).
func (a *ant) reset(start int) {
	for i := range a.visited {
		a.visited[i] = false
	}
	a.tour[0] = start
	a.visited[start] = true
}

// visit appends town at tour position pos and marks it visited.
//
// Complexity: O(1).
func (a *ant) visit(pos, town int) {
	a.tour[pos] = town
	a.visited[town] = true
}

// at returns the town the ant occupies at tour position pos.
//
// Complexity: O(1).
func (a *ant) at(pos int) int {
	return a.tour[pos]
}

// tourLength sums the consecutive edge weights of the completed tour over the
// linearized graph buffer, including the wrap-around edge. The result carries
// the +1-per-edge ingest offset (n in total for a full tour).
//
// Contract: the tour is Complete (all n positions filled).
//
// Complexity: O(n).
func (a *ant) tourLength(graph []float64, n int) float64 {
	// Start with the closing edge, then walk the chain.
	var length = graph[a.tour[n-1]*n+a.tour[0]]

	var i int
	for i = 0; i < n-1; i++ {
		length += graph[a.tour[i]*n+a.tour[i+1]]
	}

	return length
}
