// Package kdtree builds a k-dimensional spatial index over a fixed point
// set using Surface-Area-Heuristic (SAH) partitioning, and answers
// k-nearest-neighbor queries against it with a best-first traversal.
//
// Construction (Build) recursively partitions a point set with sah.Select
// and partition.Split, terminating a branch either on bucket size
// (leafThreshold) or on a degenerate (zero-cost) split, whichever comes
// first. Query (Tree.FindClosest) descends the tree near-side-first,
// maintaining a bounded best-list of the closest points seen so far and
// pruning subtrees whose split geometry cannot improve it.
//
// Complexity:
//
//	- Build: O(n log n · k) expected, dominated by sah.Select's per-level
//	  sort; O(n) levels worst case on adversarial (already-sorted,
//	  degenerate) input.
//	- FindClosest: O(log n) expected descent plus O(leafThreshold) leaf
//	  scans on well-distributed data; O(n) worst case when pruning cannot
//	  discard a subtree.
//
// Two independent option sets configure behavior without reopening
// Build's or FindClosest's positional signature:
//
//	- BuildOption configures Build: WithPivotAtInternalNodes restores a
//	  single-representative-point-per-internal-node model faithful to the
//	  original query code; WithExplicitBuildStack trades recursion for an
//	  explicit work stack on deeply skewed inputs.
//	- QueryOption configures Tree.FindClosest: WithPivotPruning restores
//	  the weaker distance-to-sibling-pivot pruning bound; WithExplicitSearchStack
//	  does the same stack-over-recursion trade for queries.
//
// Errors (sentinel):
//
//	- ErrEmptyInput        if Build is called with zero points.
//	- ErrDimensionMismatch if a point's Dim() disagrees with the tree's k.
//	- ErrInvariantViolation defensive: an internal node survived
//	  construction with no children, or a degenerate split produced two
//	  empty sides. Neither should be reachable if sah and partition are
//	  correct; it exists as a canary for future changes to either.
package kdtree
