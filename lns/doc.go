// Package lns implements the LNS driver (C8): the large-neighborhood-
// search main loop that repeatedly asks a neighborhood selector for a
// relaxed subset of the current best sample, asks the CDS engine for
// a local lower bound and symmetry breaker, and re-optimizes that
// subset with the subproblem model, keeping the best sample found.
package lns
