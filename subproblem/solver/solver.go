package solver

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Local names for the integer outcome codes gini's Solve/Try/Test
// return, used throughout this package.
const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// Status is the solver's verdict for one Solve call.
type Status int

const (
	// StatusUnknown means the time limit elapsed before a decision.
	// LowerBound still reports whatever bound was proven, if any.
	StatusUnknown Status = iota
	// StatusInfeasible means no assignment satisfies the hard
	// constraints, independent of the objective.
	StatusInfeasible
	// StatusFeasible means a satisfying assignment was found but no
	// objective was given to optimize against.
	StatusFeasible
	// StatusOptimal means a satisfying assignment was found that
	// minimizes the objective.
	StatusOptimal
)

func (st Status) String() string {
	switch st {
	case StatusInfeasible:
		return "infeasible"
	case StatusFeasible:
		return "feasible"
	case StatusOptimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	Status Status
	// Objective is the minimized sum's value. Valid when Status is
	// StatusOptimal.
	Objective int
	// LowerBound is the largest w proven infeasible plus one: every
	// objective value below it is impossible. Valid when Status is
	// StatusUnknown and the model carries an objective.
	LowerBound int

	assignment []bool
}

// Value reports the value assigned to v. Only meaningful when Status
// is StatusFeasible or StatusOptimal.
func (r Result) Value(v Var) bool {
	if int(v) < 0 || int(v) >= len(r.assignment) {
		return false
	}

	return r.assignment[v]
}

// Solver is a Model compiled once into a gini instance, ready to be
// solved repeatedly — the LNS driver calls Solve once per subproblem
// it builds around a neighborhood.
type Solver struct {
	g         inter.S
	lits      []z.Lit
	objective *logic.CardSort
}

// Build compiles m into a Solver. m should not be used again
// afterward.
func (m *Model) Build() *Solver {
	g := gini.New()

	hardRoots := make([]z.Lit, 0, len(m.clauses)+len(m.atMosts))
	for _, cl := range m.clauses {
		lits := m.litsOf(cl)
		if len(lits) == 1 {
			hardRoots = append(hardRoots, lits[0])

			continue
		}
		hardRoots = append(hardRoots, m.c.Ors(lits...))
	}
	for _, am := range m.atMosts {
		cs := m.c.CardSort(m.litsOf(am.lits))
		hardRoots = append(hardRoots, cs.Leq(am.bound))
	}

	var objective *logic.CardSort
	if len(m.minimize) > 0 {
		objective = m.c.CardSort(m.litsOf(m.minimize))
	}

	m.c.ToCnf(g)
	for _, root := range hardRoots {
		g.Add(root)
		g.Add(z.LitNull)
	}

	return &Solver{g: g, lits: m.lits, objective: objective}
}

func (s *Solver) lit(l Literal) z.Lit {
	if l.isGate {
		return l.raw
	}

	gl := s.lits[l.v]
	if l.neg {
		return gl.Not()
	}

	return gl
}

// Solve searches for a model respecting every hard constraint,
// minimizing the model's objective if one was set, trying the
// literals in hints as assumptions it is free to drop if they would
// make the problem unsatisfiable. It never runs longer than
// timeLimit.
func (s *Solver) Solve(timeLimit time.Duration, hints []Literal) Result {
	deadline := time.Now().Add(timeLimit)

	restore := s.assumeHints(hints, deadline)
	defer restore()

	if s.objective == nil {
		return s.solveOnce(time.Until(deadline))
	}

	for w := 0; w <= s.objective.N(); w++ {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Result{Status: StatusUnknown, LowerBound: w}
		}

		s.g.Assume(s.objective.Leq(w))
		switch s.g.Try(remaining) {
		case satisfiable:
			return Result{Status: StatusOptimal, Objective: w, assignment: s.snapshot()}
		case unsatisfiable:
			continue
		default:
			return Result{Status: StatusUnknown, LowerBound: w}
		}
	}

	return Result{Status: StatusInfeasible}
}

func (s *Solver) solveOnce(remaining time.Duration) Result {
	if remaining <= 0 {
		return Result{Status: StatusUnknown}
	}

	switch s.g.Try(remaining) {
	case satisfiable:
		return Result{Status: StatusFeasible, assignment: s.snapshot()}
	case unsatisfiable:
		return Result{Status: StatusInfeasible}
	default:
		return Result{Status: StatusUnknown}
	}
}

func (s *Solver) snapshot() []bool {
	out := make([]bool, len(s.lits))
	for v, l := range s.lits {
		out[v] = s.g.Value(l)
	}

	return out
}

// assumeHints assumes each of hints in order, keeping only the ones
// that remain satisfiable under unit propagation (checked via Test)
// and dropping the rest, so a caller can pass a preferred ordering
// (e.g. the CDS engine's current incumbent) without risking an
// otherwise-satisfiable subproblem. The returned func undoes every
// hint that was kept.
func (s *Solver) assumeHints(hints []Literal, deadline time.Time) func() {
	kept := 0
	for _, h := range hints {
		if time.Now().After(deadline) {
			break
		}

		s.g.Assume(s.lit(h))
		if outcome, _ := s.g.Test(nil); outcome == unsatisfiable {
			s.g.Untest()

			continue
		}
		kept++
	}

	return func() {
		for i := 0; i < kept; i++ {
			s.g.Untest()
		}
	}
}
