package partition

import "github.com/ptkyaw/sahtree/point"

// Split splits points into (left, right) on axis using value as the
// threshold: a point goes left iff its coordinate on axis is strictly
// less than value, otherwise right. Ties (coordinate == value) go
// right. Order within each side is preserved. A single pass; no
// scratch beyond the two output slices.
func Split(points []point.Point, axis int, value float64) (left, right []point.Point) {
	left = make([]point.Point, 0, len(points))
	right = make([]point.Point, 0, len(points))

	for _, p := range points {
		if p.Coord(axis) < value {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}
	return left, right
}
