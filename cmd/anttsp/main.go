// Command anttsp approximates a travelling-salesman tour for a distance
// matrix file with ant colony optimization.
//
// Usage:
//
//	anttsp [flags] <matrix file>
//
// The file holds a full n×n adjacency matrix, columns separated by spaces,
// rows by newlines (or a TSPLIB explicit-matrix instance with -tsplib).
// The solver runs -rounds solve passes of -iterations each, printing the
// best tour found so far after every pass; -rounds 0 keeps refining forever,
// matching the reference driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lukedodd/ant-tsp/aco"
	"github.com/lukedodd/ant-tsp/tspfile"
)

func main() {
	var (
		rounds     = flag.Int("rounds", 0, "solve passes to run; 0 runs forever")
		iterations = flag.Int("iterations", aco.DefaultIterations, "iterations per solve pass")
		seed       = flag.Int64("seed", 0, "RNG seed; 0 selects the fixed default stream")
		antFactor  = flag.Float64("ants", aco.DefaultAntFactor, "colony size factor: ants = floor(towns × factor)")
		workers    = flag.Int("workers", 0, "construction goroutines; <=1 is sequential")
		tsplib     = flag.Bool("tsplib", false, "parse the input as a TSPLIB explicit-matrix instance")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: anttsp [flags] <matrix file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	matrix, name, err := load(flag.Arg(0), *tsplib)
	if err != nil {
		fmt.Fprintln(os.Stderr, "anttsp:", err)
		os.Exit(1)
	}
	if name != "" {
		fmt.Println("instance:", name)
	}

	opts := aco.DefaultOptions()
	opts.Iterations = *iterations
	opts.Seed = *seed
	opts.AntFactor = *antFactor
	opts.Workers = *workers

	solver, err := aco.New(matrix, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "anttsp:", err)
		os.Exit(1)
	}

	// Repeatedly solve - the solver keeps the best tour found across passes.
	for round := 1; *rounds == 0 || round <= *rounds; round++ {
		res := solver.Solve()
		fmt.Printf("best tour length: %g\n", res.Length)
		fmt.Printf("best tour:%s\n", tourString(res.Tour))
	}
}

// load reads the requested file in the requested format; the instance name is
// empty for plain matrices.
func load(path string, tsplib bool) ([][]float64, string, error) {
	if tsplib {
		name, matrix, err := tspfile.LoadTSPLIB(path)
		return matrix, name, err
	}
	matrix, err := tspfile.LoadMatrix(path)

	return matrix, "", err
}

// tourString renders a tour the way the reference driver did: one
// space-prefixed town index per stop.
func tourString(tour []int) string {
	var b strings.Builder
	for _, town := range tour {
		fmt.Fprintf(&b, " %d", town)
	}

	return b.String()
}
