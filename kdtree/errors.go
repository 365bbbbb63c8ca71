package kdtree

import "errors"

// Sentinel errors returned by this package. Callers MUST use errors.Is to
// branch on semantics; these are never wrapped with formatted strings at
// definition site, only at call sites via fmt.Errorf("%w: ...", ErrX).
var (
	// ErrEmptyInput indicates Build was called with zero points.
	ErrEmptyInput = errors.New("kdtree: input point set is empty")

	// ErrDimensionMismatch indicates a point's coordinate count disagrees
	// with the tree's dimensionality k.
	ErrDimensionMismatch = errors.New("kdtree: point dimensionality does not match tree")

	// ErrInvariantViolation is the defensive-assertion class for states the
	// builder should never produce: an internal node surviving with no
	// children, or a degenerate split leaving both sides empty.
	ErrInvariantViolation = errors.New("kdtree: internal invariant violated")
)
