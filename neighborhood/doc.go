// Package neighborhood implements the LNS neighborhood selector (C6):
// a destroy-and-repair split of the current best sample into a fixed
// (kept) part and a free (relaxed) remainder whose uncovered tuples a
// subproblem solve must then fill, with the free part's target size
// adapted from the driver's lb/ub feedback after each iteration.
package neighborhood
