// Package randpoint generates uniformly-distributed random points for
// tests and benchmarks. It is the "random-point generator" collaborator
// named but not specified by spec §6: used only by tests and the
// cmd/sahbench harness, never imported by the point/bbox/partition/sah/
// kdtree core.
package randpoint
