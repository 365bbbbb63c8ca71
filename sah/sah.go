package sah

import (
	"math"
	"sort"

	"github.com/ptkyaw/sahtree/bbox"
	"github.com/ptkyaw/sahtree/point"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Split describes the winning split found by Select: the axis, the
// split value, and its SAH cost.
type Split struct {
	Axis  int
	Value float64
	Cost  float64
}

// Select finds the axis with the largest coordinate range (ties broken
// by lowest axis index), sorts points on it, and returns the
// minimum-cost adjacent-pair split. ok is false when points has fewer
// than two elements, in which case no split candidate exists — the
// caller (kdtree's createBranch/buildStack) treats that as "make a leaf".
func Select(points []point.Point, k int) (split Split, ok bool) {
	if len(points) < 2 {
		return Split{}, false
	}

	axis := selectAxis(points, k)

	sorted := make([]point.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CmpOn(sorted[j], axis) == point.Less
	})

	prefixMin, prefixMax := sweep(sorted, k, false)
	suffixMin, suffixMax := sweep(sorted, k, true)

	n := len(sorted)
	bestCost := 0.0
	bestValue := 0.0
	found := false

	for i := 1; i < n; i++ {
		left := bbox.BBox{K: k, Min: prefixMin[i], Max: prefixMax[i]}
		right := bbox.BBox{K: k, Min: suffixMin[i], Max: suffixMax[i]}

		cost := 2 * (float64(i)*left.SurfaceArea() + float64(n-i)*right.SurfaceArea())
		if !found || cost < bestCost {
			found = true
			bestCost = cost
			bestValue = (sorted[i-1].Coord(axis) + sorted[i].Coord(axis)) / 2
		}
	}

	return Split{Axis: axis, Value: bestValue, Cost: bestCost}, true
}

// selectAxis returns the axis with the largest coordinate range over
// points, lowest index first on ties.
func selectAxis(points []point.Point, k int) int {
	full := bbox.Compute(points, k)

	bestAxis := 0
	bestRange := full.Max[0] - full.Min[0]
	for a := 1; a < k; a++ {
		r := full.Max[a] - full.Min[a]
		if r > bestRange {
			bestRange = r
			bestAxis = a
		}
	}
	return bestAxis
}

// sweep builds the running per-axis min/max of sorted, either as
// prefixes (sweep from the left, reversed=false, result[i] covers
// sorted[:i]) or as suffixes (reversed=true, result[i] covers
// sorted[i:]). The empty-set sentinel is result[0] for prefixes and
// result[n] for suffixes; neither end is read by Select, which only
// indexes i in [1, n).
func sweep(sorted []point.Point, k int, reversed bool) (min, max [][]float64) {
	n := len(sorted)
	min = make([][]float64, n+1)
	max = make([][]float64, n+1)

	// running holds the min/max of the points folded in so far.
	runningMin := make([]float64, k)
	runningMax := make([]float64, k)
	for a := 0; a < k; a++ {
		runningMin[a] = posInf
		runningMax[a] = negInf
	}

	emptyMin := append([]float64(nil), runningMin...)
	emptyMax := append([]float64(nil), runningMax...)
	if reversed {
		min[n] = emptyMin
		max[n] = emptyMax
	} else {
		min[0] = emptyMin
		max[0] = emptyMax
	}

	for step := 0; step < n; step++ {
		idx := step
		if reversed {
			idx = n - 1 - step
		}
		p := sorted[idx]
		for a := 0; a < k; a++ {
			c := p.Coord(a)
			if c < runningMin[a] {
				runningMin[a] = c
			}
			if c > runningMax[a] {
				runningMax[a] = c
			}
		}

		snapMin := append([]float64(nil), runningMin...)
		snapMax := append([]float64(nil), runningMax...)
		if reversed {
			min[n-1-step] = snapMin
			max[n-1-step] = snapMax
		} else {
			min[step+1] = snapMin
			max[step+1] = snapMax
		}
	}

	return min, max
}
