// Package point defines the abstract Point contract consumed by the
// bbox, partition, sah and kdtree packages, plus two concrete
// implementations: PointN (any dimensionality) and Point3D (fixed k=3,
// matching the 3-D points used throughout the original tooling this
// library replaces).
//
// A Point need only answer three questions:
//
//   - Coord(axis) float64       — the coordinate value on one axis
//   - CmpOn(other, axis) Ordering — a strict total order on one axis
//   - DistSq(other) float64     — squared Euclidean distance
//
// No implementation in this package ever returns an error: every
// operation is total over a correctly-dimensioned point. A point whose
// Dim() disagrees with the tree it is inserted into is a
// kdtree.ErrDimensionMismatch, detected by kdtree, not by point.
package point
