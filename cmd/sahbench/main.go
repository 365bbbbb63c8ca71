// Command sahbench builds a k-d tree over randomly generated points and
// times a batch of nearest-neighbor queries against it. It is the
// CLI/benchmark harness collaborator named by spec §6 — out of the
// core's scope, included here because the teacher's own repo carries a
// runnable-demo convention (see examples/*.go) that this generalizes
// into a flag-driven tool.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ptkyaw/sahtree/internal/randpoint"
	"github.com/ptkyaw/sahtree/kdtree"
)

func main() {
	n := flag.Int("n", 100000, "number of points to index")
	k := flag.Int("k", 3, "point dimensionality")
	leaf := flag.Int("leaf", 16, "leaf bucket threshold")
	limit := flag.Int("limit", 10, "nearest-neighbor result size per query")
	queries := flag.Int("queries", 1000, "number of queries to run")
	seed := flag.Int64("seed", 1, "RNG seed for reproducible fixtures")
	flag.Parse()

	if *n <= 0 || *k <= 0 || *leaf <= 0 || *limit <= 0 || *queries <= 0 {
		color.Red("sahbench: all of -n, -k, -leaf, -limit, -queries must be positive")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	color.Cyan("generating %d points in %d dimensions...", *n, *k)
	points := randpoint.Generate(rng, *n, *k, -1000, 1000)

	buildStart := time.Now()
	tr, err := kdtree.Build(points, *k, *leaf)
	buildElapsed := time.Since(buildStart)
	if err != nil {
		color.Red("sahbench: build failed: %v", err)
		os.Exit(1)
	}
	color.Green("built tree over %d points in %s", *n, buildElapsed)

	qs := randpoint.Generate(rng, *queries, *k, -1000, 1000)

	queryStart := time.Now()
	for _, q := range qs {
		tr.FindClosest(q, *limit)
	}
	queryElapsed := time.Since(queryStart)

	color.Yellow(
		"ran %d queries (limit=%d) in %s (%s/query)",
		*queries, *limit, queryElapsed, queryElapsed/time.Duration(*queries),
	)

	fmt.Println("done")
}
