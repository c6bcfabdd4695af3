package feature

import "errors"

// Sentinel errors for tree/formula construction.
var (
	// ErrTooFewChildren indicates an Or/Alt/And node was built with fewer
	// than the minimum number of children it requires to be meaningful.
	ErrTooFewChildren = errors.New("feature: node requires at least one child")

	// ErrEmptyConjunction indicates an AND formula node was built with
	// fewer than two operands.
	ErrEmptyConjunction = errors.New("feature: conjunction needs >= 2 operands")

	// ErrEmptyDisjunction indicates an OR formula node was built with
	// fewer than two operands.
	ErrEmptyDisjunction = errors.New("feature: disjunction needs >= 2 operands")

	// ErrUnknownVariable indicates evaluate was called with an
	// assignment missing a variable the formula references.
	ErrUnknownVariable = errors.New("feature: assignment missing variable")
)
