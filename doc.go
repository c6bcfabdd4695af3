// Package samplns computes a small test sample covering every pairwise
// feature interaction of a configurable system.
//
// Given a feature model (a propositional formula over boolean
// features, optionally with a feature-tree structure) and a feasible
// starting sample, samplns runs a large neighborhood search (LNS) that
// repeatedly carves out a small subset of the sample, asks a
// constraint solver whether that subset can be shrunk without losing
// coverage of any pairwise interaction, and keeps the smaller result
// when it can. A background combinatorial lower-bound engine tracks
// the optimality gap alongside the search.
//
// Package layout:
//
//	feature/      — feature-model AST: tree structure, propositional formulas, CNF lowering
//	preprocess/   — equivalence contraction, CNF lowering, dense re-indexing
//	coverage/     — pairwise interaction index over a sample
//	txgraph/      — transaction graph of literal pairs that some valid configuration realizes together
//	subproblem/   — per-neighborhood model (via subproblem/solver) and symmetry breaking
//	cds/          — combinatorial lower-bound engine and background refinement worker
//	neighborhood/ — neighborhood selection and feedback-driven sizing
//	lns/          — the optimization driver tying selection, solving and bookkeeping together
//	verify/       — post-optimization coverage-equivalence check
//	modelio/      — feature-model input formats (XML, DIMACS, zip/tar.gz archives)
//	sampleio/     — sample interchange formats (CSV, JSON)
//	cmd/samplns/  — command-line front end
package samplns
