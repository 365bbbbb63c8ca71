// Package bbox computes axis-aligned bounding boxes over a set of
// point.Point values and their "perimetric surface area", the
// surface-area-heuristic building block consumed by package sah.
//
// Complexity: Compute is O(n·k) for n points of dimension k. SurfaceArea
// is O(k).
package bbox
