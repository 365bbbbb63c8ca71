package kdtree

import (
	"fmt"
	"math"

	"github.com/ptkyaw/sahtree/partition"
	"github.com/ptkyaw/sahtree/point"
	"github.com/ptkyaw/sahtree/sah"
)

// Build constructs a Tree from points, dimensionality k, and the maximum
// bucket size leaf_threshold before a branch must split. leaf_threshold
// is a required positional parameter (matching the external interface of
// §6), not an option: every call needs one, and there is no sensible
// default.
//
// Returns ErrEmptyInput if points is empty, ErrDimensionMismatch if any
// point's Dim() disagrees with k.
func Build(points []point.Point, k int, leafThreshold int, opts ...BuildOption) (*Tree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	for _, p := range points {
		if p.Dim() != k {
			return nil, fmt.Errorf("%w: point has dimension %d, tree dimension %d", ErrDimensionMismatch, p.Dim(), k)
		}
	}

	cfg := defaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{k: k, leafThreshold: leafThreshold, opts: cfg}

	var root *node
	var err error
	if cfg.explicitBuildStack {
		root, err = b.buildStack(points)
	} else {
		root, err = b.createBranch(points)
	}
	if err != nil {
		return nil, err
	}

	return &Tree{root: root, k: k, pivotAtInternalNodes: cfg.pivotAtInternalNodes}, nil
}

// builder holds the configuration shared across one Build call's
// recursive or stack-driven construction.
type builder struct {
	k             int
	leafThreshold int
	opts          buildOptions
}

// createBranch implements the recursive procedure of spec §4.F: base
// case by size, SAH split, partition, degenerate-split collapse, or
// allocate an internal node and recurse on each non-empty side.
func (b *builder) createBranch(points []point.Point) (*node, error) {
	if len(points) <= b.leafThreshold {
		return newLeaf(points), nil
	}

	split, ok := sah.Select(points, b.k)
	if !ok {
		// Fewer than two points reached a branch above leafThreshold==0;
		// there is no candidate split, so fall back to a leaf.
		return newLeaf(points), nil
	}

	left, right := partition.Split(points, split.Axis, split.Value)

	if split.Cost == 0 {
		switch {
		case len(left) == 0 && len(right) == 0:
			return nil, fmt.Errorf("%w: degenerate split produced two empty sides", ErrInvariantViolation)
		case len(left) == 0:
			return newLeaf(right), nil
		case len(right) == 0:
			return newLeaf(left), nil
		default:
			// Both sides are non-empty: the zero cost came from the
			// surface-area formula degenerating (a subset's bounding box
			// has nonzero extent on at most one axis), not from a
			// one-sided partition. "Discard the split" means don't
			// partition at all, so the whole incoming set collapses into
			// one leaf rather than silently dropping whichever side
			// isn't returned.
			return newLeaf(points), nil
		}
	}

	n := newInternal(split.Axis, split.Value)
	if b.opts.pivotAtInternalNodes {
		n.pivot = choosePivot(left, right, split.Axis, split.Value)
	}

	if len(left) > 0 {
		child, err := b.createBranch(left)
		if err != nil {
			return nil, err
		}
		n.attachChild(child, split.Value, true)
	}
	if len(right) > 0 {
		child, err := b.createBranch(right)
		if err != nil {
			return nil, err
		}
		n.attachChild(child, split.Value, false)
	}

	if n.left == nil && n.right == nil {
		return nil, fmt.Errorf("%w: internal node has no children", ErrInvariantViolation)
	}

	return n, nil
}

// buildTask is one pending unit of work for the explicit-stack builder:
// construct a node from points and, once built, attach it to parent on
// the given side (parent nil for the root task).
type buildTask struct {
	points []point.Point
	parent *node
	left   bool
}

// buildStack is the WithExplicitBuildStack counterpart to createBranch:
// the same per-node decision logic, driven by an explicit LIFO stack of
// buildTasks instead of Go call-stack recursion, so construction depth
// is bounded by heap rather than native stack.
func (b *builder) buildStack(points []point.Point) (*node, error) {
	var root *node
	stack := []buildTask{{points: points}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var n *node
		switch {
		case len(t.points) <= b.leafThreshold:
			n = newLeaf(t.points)

		default:
			split, ok := sah.Select(t.points, b.k)
			if !ok {
				n = newLeaf(t.points)
				break
			}

			left, right := partition.Split(t.points, split.Axis, split.Value)

			if split.Cost == 0 {
				switch {
				case len(left) == 0 && len(right) == 0:
					return nil, fmt.Errorf("%w: degenerate split produced two empty sides", ErrInvariantViolation)
				case len(left) == 0:
					n = newLeaf(right)
				case len(right) == 0:
					n = newLeaf(left)
				default:
					// Both sides non-empty: collapse the whole incoming
					// set into one leaf rather than dropping a side (see
					// the matching comment in createBranch).
					n = newLeaf(t.points)
				}
				break
			}

			in := newInternal(split.Axis, split.Value)
			if b.opts.pivotAtInternalNodes {
				in.pivot = choosePivot(left, right, split.Axis, split.Value)
			}
			if len(right) > 0 {
				stack = append(stack, buildTask{points: right, parent: in, left: false})
			}
			if len(left) > 0 {
				stack = append(stack, buildTask{points: left, parent: in, left: true})
			}
			n = in
		}

		if t.parent == nil {
			root = n
		} else {
			t.parent.attachChild(n, t.parent.value, t.left)
		}
	}

	if root.kind == internalKind && root.left == nil && root.right == nil {
		return nil, fmt.Errorf("%w: internal node has no children", ErrInvariantViolation)
	}

	return root, nil
}

// choosePivot picks the left/right-straddling point closest to value on
// axis, used only when WithPivotAtInternalNodes is set. This is the
// construction-order representative point DESIGN.md resolves open
// question 1 with: the point nearest the split plane stands in for the
// whole subtree during single-pivot query traversal.
func choosePivot(left, right []point.Point, axis int, value float64) point.Point {
	var best point.Point
	bestDist := math.Inf(1)

	consider := func(pts []point.Point) {
		for _, p := range pts {
			d := p.Coord(axis) - value
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				bestDist = d
				best = p
			}
		}
	}
	consider(left)
	consider(right)

	return best
}
