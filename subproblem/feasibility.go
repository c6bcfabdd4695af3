package subproblem

import (
	"time"

	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

// CheckFeasible reports whether conf (a concrete assignment over
// [0, inst.NConcrete)) extends to a full satisfying assignment of
// inst's tree structure and CNF rules, within timeLimit. It asserts
// conf's literals against a fresh copy of the base model and asks the
// CSP backend whether the remaining (composite/auxiliary) variables
// can be chosen to satisfy every constraint — the same existential
// query cds.sufficientRefutation runs for a pair of literals, widened
// here to every literal of conf.
//
// A timeout (StatusUnknown) is treated as feasible: this check only
// ever reports infeasibility on a conclusive UNSAT, consistent with
// spec §7's "Timeout... non-fatal, best effort returned."
func CheckFeasible(inst *preprocess.IndexedInstance, conf []bool, timeLimit time.Duration) bool {
	m := solver.NewModel()
	base := EncodeInstance(inst, m)
	for i, v := range conf {
		if v {
			m.AddClause(solver.Pos(base.Vars[i]))
		} else {
			m.AddClause(solver.Neg(base.Vars[i]))
		}
	}

	res := m.Build().Solve(timeLimit, nil)

	return res.Status != solver.StatusInfeasible
}
