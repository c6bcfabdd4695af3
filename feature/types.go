package feature

import "fmt"

// Label identifies a feature or auxiliary variable before dense
// integer indexing. Raw models use the names the parser produced;
// Tseitin lowering introduces fresh synthetic labels of its own.
type Label = string

// Literal pairs a variable label with a polarity. Negated == true means
// the literal is satisfied when the variable is false.
type Literal struct {
	Var     Label
	Negated bool
}

// Neg returns the negation of l.
func (l Literal) Neg() Literal { return Literal{Var: l.Var, Negated: !l.Negated} }

// Satisfied reports whether l holds under assignment.
func (l Literal) Satisfied(assignment map[Label]bool) bool {
	return assignment[l.Var] != l.Negated
}

func (l Literal) String() string {
	if l.Negated {
		return fmt.Sprintf("-%s", l.Var)
	}

	return l.Var
}

// Assignment is a total or partial Boolean assignment over labels.
type Assignment map[Label]bool
