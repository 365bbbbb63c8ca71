package kdtree

// buildOptions holds resolved configuration for a single Build call.
//
// pivotAtInternalNodes – when true, every internal node also records a
//
//	representative point (see node.pivot), restoring the single-pivot
//	query model of the original source at the cost of one extra point
//	comparison per internal node during construction. Default false
//	(builder model: only leaves hold points).
//
// explicitBuildStack   – when true, Build drives construction with an
//
//	explicit work stack instead of Go call-stack recursion. Default
//	false: recursion is simpler to read and the common case; the
//	stack-based path exists for very large, adversarially skewed
//	inputs where recursion depth could threaten the native stack.
type buildOptions struct {
	pivotAtInternalNodes bool
	explicitBuildStack   bool
}

// BuildOption is a functional option configuring Build.
type BuildOption func(*buildOptions)

// defaultBuildOptions returns the zero-value configuration: builder
// pivot model, plain recursion.
func defaultBuildOptions() buildOptions {
	return buildOptions{}
}

// WithPivotAtInternalNodes restores the original query code's
// single-representative-point-per-internal-node model: each internal
// node stores the left/right-straddling point closest to its split
// value, in addition to the split descriptor. Combine with
// WithPivotPruning on the query side for full fidelity to the observed
// source behavior (see §9 open questions 1 and 2).
func WithPivotAtInternalNodes() BuildOption {
	return func(o *buildOptions) { o.pivotAtInternalNodes = true }
}

// WithExplicitBuildStack converts Build's recursive descent into an
// explicit work-stack loop, avoiding native stack growth on pathological
// (near-linear-chain) inputs.
func WithExplicitBuildStack() BuildOption {
	return func(o *buildOptions) { o.explicitBuildStack = true }
}

// queryOptions holds resolved configuration for a single FindClosest call.
//
// pivotPruning        – when true, the far-side descent test compares the
//
//	query to the far child's representative point (a leaf's first
//	point, or an internal node's pivot; an internal child without a
//	pivot falls back to the plane distance) instead of to the
//	splitting plane. This is the weaker, original pruning bound: it
//	never loses correctness but may visit subtrees a plane-distance
//	bound would have pruned. Default false (plane-distance bound).
//
// explicitSearchStack – same recursion-to-stack conversion as
//
//	WithExplicitBuildStack, applied to traversal.
type queryOptions struct {
	pivotPruning        bool
	explicitSearchStack bool
}

// QueryOption is a functional option configuring Tree.FindClosest.
type QueryOption func(*queryOptions)

// defaultQueryOptions returns the zero-value configuration:
// split-plane pruning, plain recursion.
func defaultQueryOptions() queryOptions {
	return queryOptions{}
}

// WithPivotPruning restores the original distance-to-sibling-pivot
// pruning bound in place of the textbook-correct distance-to-split-plane
// bound. Falls back to plane-distance automatically for any far child
// that carries no representative point (i.e. the tree was not built
// with WithPivotAtInternalNodes and the child is internal).
func WithPivotPruning() QueryOption {
	return func(o *queryOptions) { o.pivotPruning = true }
}

// WithExplicitSearchStack converts FindClosest's recursive descent into
// an explicit work-stack loop.
func WithExplicitSearchStack() QueryOption {
	return func(o *queryOptions) { o.explicitSearchStack = true }
}
