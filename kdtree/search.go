package kdtree

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/ptkyaw/sahtree/point"
)

// Candidate is one result entry from FindClosest: a squared distance
// paired with the point it was measured to. Point borrows into the
// tree's leaf buckets and remains valid for the tree's lifetime.
type Candidate struct {
	DistSq float64
	Point  point.Point
}

// FindClosest returns the limit points of the tree closest to query,
// ascending by squared distance, or (nil, false) if limit is zero or
// the tree holds no point that can satisfy it (impossible once Build
// has succeeded, since construction rejects empty input).
//
// Panics if query.Dim() disagrees with the tree's k: this is a caller
// contract violation, not a runtime data condition, so it is reported
// the same way an out-of-range slice index is — immediately, not deep
// inside a partially-completed traversal.
func (t *Tree) FindClosest(query point.Point, limit int, opts ...QueryOption) ([]Candidate, bool) {
	if query.Dim() != t.k {
		panic(fmt.Sprintf("kdtree: FindClosest: %v: query dim=%d tree dim=%d", ErrDimensionMismatch, query.Dim(), t.k))
	}
	if limit <= 0 {
		return nil, false
	}

	cfg := defaultQueryOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &searcher{
		query:                query,
		limit:                limit,
		maxAccepted:          math.Inf(1),
		pivotAtInternalNodes: t.pivotAtInternalNodes,
		pivotPruning:         cfg.pivotPruning,
	}

	if cfg.explicitSearchStack {
		s.descendStack(t.root)
	} else {
		s.descend(t.root)
	}

	if s.best.Len() == 0 {
		return nil, false
	}

	sort.Slice(s.best, func(i, j int) bool {
		if s.best[i].DistSq != s.best[j].DistSq {
			return s.best[i].DistSq < s.best[j].DistSq
		}
		return s.best[i].seq < s.best[j].seq
	})

	result := make([]Candidate, len(s.best))
	for i, item := range s.best {
		result[i] = item.Candidate
	}

	return result, true
}

// searcher carries the mutable state of a single FindClosest call: the
// query point, the requested result size, and the bounded best-list
// (implemented as a max-heap so the current worst accepted distance is
// always at the root, mirroring dijkstra's nodePQ min-heap idiom).
type searcher struct {
	query point.Point
	limit int

	best        bestHeap
	maxAccepted float64
	nextSeq     int

	pivotAtInternalNodes bool
	pivotPruning         bool
}

// consider measures query against p and, if it beats the current worst
// accepted distance, inserts it into the bounded best-list, evicting the
// previous worst once the list exceeds limit. Candidates are stamped with
// a monotonically increasing sequence number in call order, which is
// traversal order (near-first) — the only way to recover spec's
// insertion-order tie-break once the heap has reordered entries by
// DistSq alone.
func (s *searcher) consider(p point.Point) {
	d := s.query.DistSq(p)
	if d >= s.maxAccepted {
		return
	}

	heap.Push(&s.best, heapItem{Candidate: Candidate{DistSq: d, Point: p}, seq: s.nextSeq})
	s.nextSeq++
	if s.best.Len() > s.limit {
		heap.Pop(&s.best)
	}
	if s.best.Len() == s.limit {
		s.maxAccepted = s.best[0].DistSq
	}
}

// descend implements the recursive best-first traversal of spec §4.G:
// scan every point at a leaf, or recurse near-side-first at an internal
// node and consider the far side only if it cannot be ruled out.
func (s *searcher) descend(n *node) {
	if n == nil {
		return
	}

	if n.isLeaf() {
		for _, p := range n.points {
			s.consider(p)
		}
		return
	}

	if s.pivotAtInternalNodes && n.pivot != nil {
		s.consider(n.pivot)
	}

	near, far := n.left, n.right
	if s.query.Coord(n.axis) > n.value {
		near, far = n.right, n.left
	}

	s.descend(near)

	if far == nil {
		return
	}
	if s.farBoundDistSq(n, far) < s.maxAccepted {
		s.descend(far)
	}
}

// descendStack is the WithExplicitSearchStack counterpart to descend:
// the same near-first, bound-then-far logic, driven by an explicit LIFO
// stack instead of recursion. The far side is pushed before the near
// side so the near subtree's entire descendant set is popped and
// processed first — the pruning bound against it is re-checked at pop
// time, once traversal has had the chance to tighten maxAccepted.
func (s *searcher) descendStack(root *node) {
	type frame struct {
		n           *node
		boundDistSq float64
		checked     bool
	}

	stack := []frame{{n: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n == nil {
			continue
		}
		if f.checked && f.boundDistSq >= s.maxAccepted {
			continue
		}

		if f.n.isLeaf() {
			for _, p := range f.n.points {
				s.consider(p)
			}
			continue
		}

		if s.pivotAtInternalNodes && f.n.pivot != nil {
			s.consider(f.n.pivot)
		}

		near, far := f.n.left, f.n.right
		if s.query.Coord(f.n.axis) > f.n.value {
			near, far = f.n.right, f.n.left
		}

		if far != nil {
			stack = append(stack, frame{n: far, boundDistSq: s.farBoundDistSq(f.n, far), checked: true})
		}
		if near != nil {
			stack = append(stack, frame{n: near})
		}
	}
}

// farBoundDistSq computes the lower bound on squared distance from the
// query to anything inside far, used to decide whether far is worth
// descending into. The default (textbook-correct) bound is the distance
// to parent's splitting plane; WithPivotPruning restores the weaker
// distance-to-far's-representative-point bound, falling back to the
// plane-distance bound when far carries no representative.
func (s *searcher) farBoundDistSq(parent, far *node) float64 {
	if s.pivotPruning {
		if rep := far.representative(); rep != nil {
			return s.query.DistSq(rep)
		}
	}
	d := s.query.Coord(parent.axis) - parent.value
	return d * d
}

// heapItem wraps a Candidate with the traversal-order sequence number it
// was considered at, so eviction and final ordering can both break
// DistSq ties by insertion order even after the heap has restructured
// the underlying array.
type heapItem struct {
	Candidate
	seq int
}

// bestHeap is a max-heap of heapItem ordered by descending DistSq (ties
// broken by descending seq, so the most recently inserted of two
// equal-distance candidates is evicted first), so the current worst
// accepted candidate always sits at the root and can be evicted in
// O(log limit) once the best-list exceeds its bound.
type bestHeap []heapItem

func (h bestHeap) Len() int { return len(h) }
func (h bestHeap) Less(i, j int) bool {
	if h[i].DistSq != h[j].DistSq {
		return h[i].DistSq > h[j].DistSq
	}
	return h[i].seq > h[j].seq
}
func (h bestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bestHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *bestHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
