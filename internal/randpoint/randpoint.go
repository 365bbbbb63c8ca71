package randpoint

import (
	"math"
	"math/rand"

	"github.com/ptkyaw/sahtree/point"
)

// Generate returns n points of dimensionality k, each coordinate drawn
// uniformly from [min, max] and rounded to two decimal places, using
// rng as the source of randomness. Pass a seeded *rand.Rand for
// deterministic, reproducible test fixtures.
func Generate(rng *rand.Rand, n, k int, min, max float64) []point.Point {
	points := make([]point.Point, n)
	for i := 0; i < n; i++ {
		coords := make([]float64, k)
		for a := 0; a < k; a++ {
			coords[a] = round2(min + rng.Float64()*(max-min))
		}
		points[i] = point.NewPointN(coords...)
	}
	return points
}

// round2 rounds v to two decimal places, matching the original
// dataset generator's rounding convention.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
