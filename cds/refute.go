package cds

import (
	"time"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

// sufficientRefutation decides, via the shared CSP backend, whether
// edges e1=(a,b) and e2=(c,d) can ever be realized by the same
// feasible configuration. An UNSAT result on the joint 4-literal query
// proves e1 and e2 independent; it additionally tests each edge
// standalone and reports any that turns out globally infeasible on
// its own, the one case in which an edge of the transaction graph can
// be spurious — a subgraph query may be handed candidate tuples that
// were never validated against the full model.
func sufficientRefutation(inst *preprocess.IndexedInstance, e1, e2 coverage.Tuple, timeLimit time.Duration) (independent bool, spurious []coverage.Tuple) {
	if jointlyFeasible(inst, []coverage.Tuple{e1, e2}, timeLimit) {
		return false, nil
	}

	independent = true
	if !jointlyFeasible(inst, []coverage.Tuple{e1}, timeLimit) {
		spurious = append(spurious, e1)
	}
	if !jointlyFeasible(inst, []coverage.Tuple{e2}, timeLimit) {
		spurious = append(spurious, e2)
	}

	return independent, spurious
}

// jointlyFeasible reports whether inst admits a configuration
// realizing every literal named by tuples simultaneously. A timeout
// (StatusUnknown) is treated as "not proven infeasible" — this
// function only ever drives independence/pruning decisions on a
// confirmed UNSAT.
func jointlyFeasible(inst *preprocess.IndexedInstance, tuples []coverage.Tuple, timeLimit time.Duration) bool {
	m := solver.NewModel()
	base := subproblem.EncodeInstance(inst, m)
	for _, t := range tuples {
		m.AddClause(refutationLiteral(base, t.I, t.Pi))
		m.AddClause(refutationLiteral(base, t.J, t.Pj))
	}

	res := m.Build().Solve(timeLimit, nil)

	return res.Status != solver.StatusInfeasible
}

func refutationLiteral(base *subproblem.BaseModel, feature int, polarity bool) solver.Literal {
	if polarity {
		return solver.Pos(base.Vars[feature])
	}

	return solver.Neg(base.Vars[feature])
}
