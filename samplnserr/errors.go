// Package samplnserr defines the sentinel error kinds shared across samplns-go.
//
// Error policy (explicit and strict), following the teacher corpus's
// convention (see lvlath/builder/errors.go):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites attach context with fmt.Errorf("%s: %w", ctx, ErrX).
//
// Propagation rules (spec §7): Timeout and SolverUnknown are absorbed
// locally by cds and subproblem and reported as regular (non-improving)
// outcomes — they must never escape as a returned error from those
// packages. All other kinds abort the current top-level call.
package samplnserr

import "errors"

var (
	// ErrMalformedInput indicates a parser could not decode its input or
	// required elements are missing.
	ErrMalformedInput = errors.New("samplns: malformed input")

	// ErrInconsistentModel indicates the preprocessor detected
	// contradictory equivalences (a class forced both equal and
	// inverse-equal to another class).
	ErrInconsistentModel = errors.New("samplns: inconsistent model")

	// ErrInfeasibleConfiguration indicates a configuration in a provided
	// sample violates the feature model (tree or rules).
	ErrInfeasibleConfiguration = errors.New("samplns: infeasible configuration")

	// ErrCoverageMismatch indicates the verifier rejected a result: the
	// output sample does not have the same pairwise coverage as the input.
	ErrCoverageMismatch = errors.New("samplns: coverage mismatch")

	// ErrTimeout indicates a time-bounded operation ended without a
	// proof. Non-fatal; callers receive the best-effort result alongside
	// this error only when no result at all could be produced.
	ErrTimeout = errors.New("samplns: timeout")

	// ErrSolverUnknown indicates the external CSP solver returned no
	// decision within its budget.
	ErrSolverUnknown = errors.New("samplns: solver returned unknown")

	// ErrInvariantViolation indicates an internal consistency check
	// failed. Fatal: callers should treat this as a bug report.
	ErrInvariantViolation = errors.New("samplns: invariant violation")
)
