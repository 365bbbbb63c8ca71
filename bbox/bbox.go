package bbox

import (
	"math"

	"github.com/ptkyaw/sahtree/point"
)

// BBox is the axis-aligned bounding box of a point set: a pair of
// coordinate vectors (Min, Max) of length K, with Min[a] <= Max[a] for
// every axis when the set that produced it was non-empty.
type BBox struct {
	K    int
	Min  []float64
	Max  []float64
	empt bool
}

// Compute iterates points once, tightening Min/Max per axis. An empty
// points slice yields a degenerate box whose SurfaceArea is 0 — that 0
// is returned directly by SurfaceArea, never derived from the +Inf/-Inf
// sentinels used internally during the sweep.
func Compute(points []point.Point, k int) BBox {
	if len(points) == 0 {
		return BBox{K: k, Min: make([]float64, k), Max: make([]float64, k), empt: true}
	}

	min := make([]float64, k)
	max := make([]float64, k)
	for a := 0; a < k; a++ {
		min[a] = math.Inf(1)
		max[a] = math.Inf(-1)
	}

	for _, p := range points {
		for a := 0; a < k; a++ {
			c := p.Coord(a)
			if c < min[a] {
				min[a] = c
			}
			if c > max[a] {
				max[a] = c
			}
		}
	}

	return BBox{K: k, Min: min, Max: max}
}

// IsEmpty reports whether this box was computed from zero points.
func (b BBox) IsEmpty() bool { return b.empt }

// SurfaceArea returns the "perimetric surface"
// 2 * sum_a( extent[a] * extent[(a+1) mod k] ), the SAH building block.
// For k=3 this is the standard cuboid surface area 2(xy+yz+zx); for
// other k it is used only for relative comparison within one tree, as
// documented in the spec this reproduces bit-for-bit.
func (b BBox) SurfaceArea() float64 {
	if b.empt || b.K == 0 {
		return 0
	}

	var sum float64
	for a := 0; a < b.K; a++ {
		extA := b.Max[a] - b.Min[a]
		next := (a + 1) % b.K
		extNext := b.Max[next] - b.Min[next]
		sum += extA * extNext
	}
	return 2 * sum
}
