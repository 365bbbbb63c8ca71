package kdtree

import "github.com/ptkyaw/sahtree/point"

// nodeKind distinguishes the two variants of the Node tagged union.
type nodeKind int

const (
	leafKind nodeKind = iota
	internalKind
)

// node is the tagged-union tree node of spec §4.E. A leaf owns a
// non-empty bucket of points; an internal node owns a split descriptor
// and up to two children. pivot is only ever non-nil when the tree was
// built with WithPivotAtInternalNodes.
type node struct {
	kind   nodeKind
	points []point.Point // leaf bucket; nil on internal nodes

	axis  int
	value float64
	left  *node
	right *node

	pivot point.Point
}

// newLeaf constructs a leaf node. points must be non-empty; the builder
// is responsible for never calling this with an empty bucket.
func newLeaf(points []point.Point) *node {
	if len(points) == 0 {
		panic("kdtree: newLeaf requires a non-empty bucket")
	}
	return &node{kind: leafKind, points: points}
}

// newInternal constructs an internal node awaiting children, recording
// the split descriptor that will govern descent.
func newInternal(axis int, value float64) *node {
	return &node{kind: internalKind, axis: axis, value: value}
}

// attachChild records child on the given side, overwriting the parent's
// split value. The builder only ever attaches with the value the node
// was constructed with, so this overwrite is a no-op in practice.
func (n *node) attachChild(child *node, value float64, left bool) {
	n.value = value
	if left {
		n.left = child
	} else {
		n.right = child
	}
}

// isLeaf reports whether n is the Leaf variant.
func (n *node) isLeaf() bool { return n.kind == leafKind }

// representative returns the point used as n's stand-in for distance
// comparisons under the faithful single-pivot query modes: a leaf's
// first bucket point, or an internal node's stored pivot (nil if none
// was recorded at build time).
func (n *node) representative() point.Point {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return n.points[0]
	}
	return n.pivot
}
