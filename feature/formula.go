package feature

import "fmt"

// Formula is the cross-tree Boolean rule language: a tagged variant
// over {Var, And, Or, Not, Impl, Eq}. Not is not a stored variant —
// the Not constructor eagerly pushes negation one level down via De Morgan
// (mirroring the Python original's SatNode.NEG/NOT), so the concrete
// implementations below are Var, And, Or, Impl and Eq; a caller asking
// for Not(f) receives f.Neg(), already in one of those four shapes.
type Formula interface {
	// Neg returns the De Morgan negation of the receiver.
	Neg() Formula
	// ToCNF lowers the receiver to conjunctive normal form, introducing
	// fresh auxiliary variables via aux where Tseitin transformation is
	// required (disjunctions over conjunctions).
	ToCNF(aux *AuxAllocator) Formula
	// Substitute rewrites variable labels through direct/inverse maps.
	Substitute(direct, inverse map[Label]Label) Formula
	// AllVariables returns every variable label referenced, first-
	// encounter order, each exactly once.
	AllVariables() []Label
	// Evaluate reports whether assignment satisfies the formula.
	Evaluate(assignment Assignment) bool
	fmt.Stringer
}

// AuxAllocator hands out fresh synthetic variable labels for Tseitin
// clauses, scoped to one CNF-lowering pass.
type AuxAllocator struct{ n int }

// Fresh returns a new auxiliary VarF guaranteed unused elsewhere in
// this allocator's scope.
func (a *AuxAllocator) Fresh() *VarF {
	a.n++

	return &VarF{Name: fmt.Sprintf("__AUX[%d]", a.n), Auxiliary: true}
}

// Not returns the De Morgan negation of f — the smart constructor
// standing in for the formula language's Not variant.
func Not(f Formula) Formula { return f.Neg() }

// VarF is a variable literal, optionally negated.
type VarF struct {
	Name      Label
	Negated   bool
	Auxiliary bool
}

func (v *VarF) Neg() Formula { return &VarF{Name: v.Name, Negated: !v.Negated, Auxiliary: v.Auxiliary} }
func (v *VarF) ToCNF(*AuxAllocator) Formula { return v }
func (v *VarF) Substitute(direct, inverse map[Label]Label) Formula {
	if n, ok := direct[v.Name]; ok {
		return &VarF{Name: n, Negated: v.Negated, Auxiliary: v.Auxiliary}
	}
	if n, ok := inverse[v.Name]; ok {
		return &VarF{Name: n, Negated: !v.Negated, Auxiliary: v.Auxiliary}
	}

	return v
}
func (v *VarF) AllVariables() []Label { return []Label{v.Name} }
func (v *VarF) Evaluate(assignment Assignment) bool {
	return assignment[v.Name] != v.Negated
}
func (v *VarF) String() string {
	if v.Negated {
		return "-" + v.Name
	}

	return v.Name
}

// Lit converts v to a feature Literal, valid only while v is a bare
// variable (not yet wrapped by And/Or/Impl/Eq).
func (v *VarF) Lit() Literal { return Literal{Var: v.Name, Negated: v.Negated} }

// AndF is a conjunction of at least two formulas; nested AndF operands
// passed to NewAnd are flattened.
type AndF struct{ Elements []Formula }

// NewAnd builds an AndF, flattening nested conjunctions and rejecting
// fewer than two operands.
func NewAnd(elements ...Formula) (*AndF, error) {
	if len(elements) < 2 {
		return nil, ErrEmptyConjunction
	}
	out := make([]Formula, 0, len(elements))
	for _, e := range elements {
		if a, ok := e.(*AndF); ok {
			out = append(out, a.Elements...)
		} else {
			out = append(out, e)
		}
	}

	return &AndF{Elements: out}, nil
}

func (a *AndF) Neg() Formula {
	negated := make([]Formula, len(a.Elements))
	for i, e := range a.Elements {
		negated[i] = e.Neg()
	}
	out, _ := NewOr(negated...)

	return out
}

func (a *AndF) ToCNF(aux *AuxAllocator) Formula {
	lowered := make([]Formula, len(a.Elements))
	for i, e := range a.Elements {
		lowered[i] = e.ToCNF(aux)
	}
	out, _ := NewAnd(lowered...)

	return out
}

func (a *AndF) Substitute(direct, inverse map[Label]Label) Formula {
	out := make([]Formula, len(a.Elements))
	for i, e := range a.Elements {
		out[i] = e.Substitute(direct, inverse)
	}
	r, _ := NewAnd(out...)

	return r
}

func (a *AndF) AllVariables() []Label { return collectVars(a.Elements) }
func (a *AndF) Evaluate(assignment Assignment) bool {
	for _, e := range a.Elements {
		if !e.Evaluate(assignment) {
			return false
		}
	}

	return true
}
func (a *AndF) String() string { return joinElems("AND", a.Elements) }

// OrF is a disjunction of at least two formulas; nested OrF operands
// passed to NewOr are flattened.
type OrF struct{ Elements []Formula }

// NewOr builds an OrF, flattening nested disjunctions and rejecting
// fewer than two operands.
func NewOr(elements ...Formula) (*OrF, error) {
	if len(elements) < 2 {
		return nil, ErrEmptyDisjunction
	}
	out := make([]Formula, 0, len(elements))
	for _, e := range elements {
		if o, ok := e.(*OrF); ok {
			out = append(out, o.Elements...)
		} else {
			out = append(out, e)
		}
	}

	return &OrF{Elements: out}, nil
}

func (o *OrF) Neg() Formula {
	negated := make([]Formula, len(o.Elements))
	for i, e := range o.Elements {
		negated[i] = e.Neg()
	}
	out, _ := NewAnd(negated...)

	return out
}

// ToCNF lowers a disjunction of conjunctions via Tseitin: for every
// operand (a bare literal operand included), introduce an auxiliary
// variable implying every literal of that operand, then require at
// least one auxiliary to hold. Pure disjunctions of literals are
// returned unchanged.
func (o *OrF) ToCNF(aux *AuxAllocator) Formula {
	lowered := make([]Formula, len(o.Elements))
	allVars := true
	for i, e := range o.Elements {
		lowered[i] = e.ToCNF(aux)
		if _, ok := lowered[i].(*VarF); !ok {
			allVars = false
		}
	}
	if allVars {
		r, _ := NewOr(lowered...)

		return r
	}

	var auxVars []Formula
	var clauses []Formula
	for _, conjunct := range lowered {
		a := aux.Fresh()
		auxVars = append(auxVars, a)
		if and, ok := conjunct.(*AndF); ok {
			for _, lit := range and.Elements {
				c, _ := NewOr(a.Neg(), lit)
				clauses = append(clauses, c)
			}
		} else {
			c, _ := NewOr(a.Neg(), conjunct)
			clauses = append(clauses, c)
		}
	}
	atLeastOneAux, _ := NewOr(auxVars...)
	clauses = append(clauses, atLeastOneAux)
	result, _ := NewAnd(clauses...)

	return result
}

func (o *OrF) Substitute(direct, inverse map[Label]Label) Formula {
	out := make([]Formula, len(o.Elements))
	for i, e := range o.Elements {
		out[i] = e.Substitute(direct, inverse)
	}
	r, _ := NewOr(out...)

	return r
}

func (o *OrF) AllVariables() []Label { return collectVars(o.Elements) }
func (o *OrF) Evaluate(assignment Assignment) bool {
	for _, e := range o.Elements {
		if e.Evaluate(assignment) {
			return true
		}
	}

	return false
}
func (o *OrF) String() string { return joinElems("OR", o.Elements) }

// ImplF is a <= b (condition => implication).
type ImplF struct{ Condition, Implication Formula }

func NewImpl(condition, implication Formula) *ImplF {
	return &ImplF{Condition: condition, Implication: implication}
}

func (i *ImplF) Neg() Formula {
	out, _ := NewAnd(i.Condition, i.Implication.Neg())

	return out
}
func (i *ImplF) ToCNF(aux *AuxAllocator) Formula {
	disj, _ := NewOr(i.Condition.Neg(), i.Implication)

	return disj.ToCNF(aux)
}
func (i *ImplF) Substitute(direct, inverse map[Label]Label) Formula {
	return NewImpl(i.Condition.Substitute(direct, inverse), i.Implication.Substitute(direct, inverse))
}
func (i *ImplF) AllVariables() []Label { return collectVars([]Formula{i.Condition, i.Implication}) }
func (i *ImplF) Evaluate(assignment Assignment) bool {
	return !i.Condition.Evaluate(assignment) || i.Implication.Evaluate(assignment)
}
func (i *ImplF) String() string { return fmt.Sprintf("%s=>%s", i.Condition, i.Implication) }

// EqF is a biconditional a <=> b.
type EqF struct{ A, B Formula }

func NewEq(a, b Formula) *EqF { return &EqF{A: a, B: b} }

// IsVariableEquivalence reports whether both sides are bare variables
// — the case the preprocessor's equivalence contraction handles
// specially (spec §4.1 step 1).
func (e *EqF) IsVariableEquivalence() bool {
	_, aOK := e.A.(*VarF)
	_, bOK := e.B.(*VarF)

	return aOK && bOK
}

func (e *EqF) Neg() Formula { return NewEq(e.A, e.B.Neg()) }
func (e *EqF) ToCNF(aux *AuxAllocator) Formula {
	left, _ := NewAnd(e.A, e.B)
	right, _ := NewAnd(e.A.Neg(), e.B.Neg())
	disj, _ := NewOr(left, right)

	return disj.ToCNF(aux)
}
func (e *EqF) Substitute(direct, inverse map[Label]Label) Formula {
	return NewEq(e.A.Substitute(direct, inverse), e.B.Substitute(direct, inverse))
}
func (e *EqF) AllVariables() []Label { return collectVars([]Formula{e.A, e.B}) }
func (e *EqF) Evaluate(assignment Assignment) bool {
	return e.A.Evaluate(assignment) == e.B.Evaluate(assignment)
}
func (e *EqF) String() string { return fmt.Sprintf("%s==%s", e.A, e.B) }

func collectVars(elements []Formula) []Label {
	seen := make(map[Label]bool)
	var out []Label
	for _, e := range elements {
		for _, v := range e.AllVariables() {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

func joinElems(op string, elements []Formula) string {
	s := op + "("
	for i, e := range elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}

	return s + ")"
}
