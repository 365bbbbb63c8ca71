// Package sah implements the Surface-Area-Heuristic split evaluator:
// given a non-empty set of points, it picks the single axis with the
// largest coordinate range, sorts the points on that axis, and scans
// every adjacent-pair midpoint as a candidate split value, returning
// the one minimizing
//
//	C(v) = 2 * ( |L|·SurfaceArea(bbox(L)) + |R|·SurfaceArea(bbox(R)) )
//
// This is a documented simplification of classic SAH, which evaluates
// every axis per level; here only the longest-range axis is evaluated,
// and the result is reproduced bit-for-bit against that simplification
// rather than "corrected" to the textbook algorithm.
//
// Select runs in O(n·k) using a prefix/suffix bounding-box sweep rather
// than the O(n²·k) naive recomputation-per-candidate, while preserving
// the same argmin and the same "earliest candidate wins" tie-break a
// naive implementation would produce.
package sah
