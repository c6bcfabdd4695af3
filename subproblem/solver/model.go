package solver

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Var is an opaque handle to a Boolean decision variable in a Model.
type Var int

// Literal is a Var together with a polarity, the unit clauses and
// constraint terms are built from. A Literal can also wrap a derived
// gate literal returned by Model.AtLeast, for constraints built on top
// of a cardinality gadget rather than a plain decision variable.
type Literal struct {
	v      Var
	neg    bool
	raw    z.Lit
	isGate bool
}

// Pos returns the positive occurrence of v.
func Pos(v Var) Literal { return Literal{v: v} }

// Neg returns the negated occurrence of v.
func Neg(v Var) Literal { return Literal{v: v, neg: true} }

func fromGate(l z.Lit) Literal { return Literal{raw: l, isGate: true} }

// Not returns the negation of l.
func (l Literal) Not() Literal {
	if l.isGate {
		return Literal{raw: l.raw.Not(), isGate: true}
	}

	return Literal{v: l.v, neg: !l.neg}
}

type linear struct {
	bound int
	lits  []Literal
}

// Model accumulates Boolean variables and constraints for one CSP
// instance. Build compiles the accumulated state; a Model must not be
// reused across two different problems once Build has been called.
type Model struct {
	c        *logic.C
	lits     []z.Lit // lits[v] is the positive gini literal for Var(v)
	clauses  [][]Literal
	atMosts  []linear
	minimize []Literal
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{c: logic.NewCCap(64)}
}

// NewVar allocates a fresh Boolean variable.
func (m *Model) NewVar() Var {
	m.lits = append(m.lits, m.c.Lit())

	return Var(len(m.lits) - 1)
}

// NewVars allocates n fresh Boolean variables.
func (m *Model) NewVars(n int) []Var {
	out := make([]Var, n)
	for i := range out {
		out[i] = m.NewVar()
	}

	return out
}

// AddClause asserts that at least one of lits is true. An empty
// clause set is a no-op; pass a single literal for a unit clause.
func (m *Model) AddClause(lits ...Literal) {
	if len(lits) == 0 {
		return
	}
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	m.clauses = append(m.clauses, cp)
}

// AddAtMostOne asserts that no two of lits are simultaneously true,
// coded as the implicit pairwise-exclusion clause set rather than a
// dedicated cardinality gadget.
func (m *Model) AddAtMostOne(lits ...Literal) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			m.AddClause(lits[i].Not(), lits[j].Not())
		}
	}
}

// AddAtMost asserts that at most bound of lits are simultaneously
// true, coded via a sorting-network cardinality constraint.
func (m *Model) AddAtMost(bound int, lits ...Literal) {
	if len(lits) == 0 {
		return
	}
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	m.atMosts = append(m.atMosts, linear{bound: bound, lits: cp})
}

// Minimize sets the objective to the number of lits assigned true.
// Calling Minimize more than once replaces the prior objective.
func (m *Model) Minimize(lits ...Literal) {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	m.minimize = cp
}

// AtLeast returns a Literal true iff at least k of lits are
// simultaneously true, built on a sorting-network cardinality gadget.
// The returned Literal may be used anywhere a plain Literal is, in
// particular to compare two slots' true-variable counts against each
// other rather than against a fixed bound.
func (m *Model) AtLeast(k int, lits ...Literal) Literal {
	cs := m.c.CardSort(m.litsOf(lits))

	return fromGate(cs.Geq(k))
}

func (m *Model) lit(l Literal) z.Lit {
	if l.isGate {
		return l.raw
	}

	gl := m.lits[l.v]
	if l.neg {
		return gl.Not()
	}

	return gl
}

func (m *Model) litsOf(ls []Literal) []z.Lit {
	out := make([]z.Lit, len(ls))
	for i, l := range ls {
		out[i] = m.lit(l)
	}

	return out
}
