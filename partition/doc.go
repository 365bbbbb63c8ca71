// Package partition splits a slice of point.Point values into a left
// and right subset by a single-axis split value, the primitive the sah
// and kdtree packages build on.
package partition
