package subproblem

import (
	"sort"
	"time"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

// slot is one candidate configuration within a Model: a full replica
// of the instance's feasibility constraints plus an active variable
// deciding whether this slot contributes to the output sample.
type slot struct {
	base      *BaseModel
	active    solver.Var
	tupleVars map[coverage.Tuple]solver.Var
}

// Model searches for at most k configuration slots that jointly cover
// every tuple registered via EnforceTuple, minimizing the number of
// active slots — the Go analogue of the original's vectorized edge
// model and its per-slot submodels, both built here on the shared
// EncodeInstance base-model factory. A Model is single-use: build it,
// register tuples and symmetry breakers, Solve once.
type Model struct {
	inst  *preprocess.IndexedInstance
	m     *solver.Model
	slots []*slot
}

// NewModel allocates k independent configuration slots over inst and
// sets the objective to the number of active slots.
func NewModel(inst *preprocess.IndexedInstance, k int) *Model {
	m := solver.NewModel()
	mdl := &Model{inst: inst, m: m, slots: make([]*slot, k)}

	active := make([]solver.Literal, k)
	for i := 0; i < k; i++ {
		base := EncodeInstance(inst, m)
		a := m.NewVar()
		mdl.slots[i] = &slot{base: base, active: a, tupleVars: make(map[coverage.Tuple]solver.Var)}
		active[i] = solver.Pos(a)
	}
	m.Minimize(active...)

	return mdl
}

// K reports the number of slots this model was built with.
func (mdl *Model) K() int { return len(mdl.slots) }

// tupleVar returns slot i's Boolean for "this slot covers t", lazily
// asserting covered=>i-literal, covered=>j-literal and covered=>active
// the first time t is referenced against that slot.
func (mdl *Model) tupleVar(i int, t coverage.Tuple) solver.Var {
	s := mdl.slots[i]
	if v, ok := s.tupleVars[t]; ok {
		return v
	}

	v := mdl.m.NewVar()
	s.tupleVars[t] = v
	covered := solver.Pos(v)
	mdl.m.AddClause(covered.Not(), literalFor(s.base, t.I, t.Pi))
	mdl.m.AddClause(covered.Not(), literalFor(s.base, t.J, t.Pj))
	mdl.m.AddClause(covered.Not(), solver.Pos(s.active))

	return v
}

func literalFor(base *BaseModel, feature int, polarity bool) solver.Literal {
	if polarity {
		return solver.Pos(base.Vars[feature])
	}

	return solver.Neg(base.Vars[feature])
}

// EnforceTuple requires at least one slot to cover t.
func (mdl *Model) EnforceTuple(t coverage.Tuple) {
	lits := make([]solver.Literal, len(mdl.slots))
	for i := range mdl.slots {
		lits[i] = solver.Pos(mdl.tupleVar(i, t))
	}
	mdl.m.AddClause(lits...)
}

// BreakSymmetries pins the i-th independent tuple to slot i, forcing
// that slot to realize it, then for the slots beyond the pinned prefix
// forces slot i to be no more "used" than slot i-1: its active bit
// implies the previous slot's, and its true-variable count is bounded
// by the previous slot's count. This collapses solutions that differ
// only by a permutation of interchangeable slots.
func (mdl *Model) BreakSymmetries(independentTuples []coverage.Tuple) {
	pinned := len(independentTuples)
	if pinned > len(mdl.slots) {
		pinned = len(mdl.slots)
	}
	for i := 0; i < pinned; i++ {
		mdl.m.AddClause(solver.Pos(mdl.tupleVar(i, independentTuples[i])))
	}

	for i := pinned; i < len(mdl.slots); i++ {
		if i == 0 {
			continue
		}
		mdl.m.AddClause(solver.Neg(mdl.slots[i].active), solver.Pos(mdl.slots[i-1].active))

		cur := varLits(mdl.slots[i].base)
		prev := varLits(mdl.slots[i-1].base)
		for w := 1; w <= mdl.inst.NAll; w++ {
			mdl.m.AddClause(mdl.m.AtLeast(w, cur...).Not(), mdl.m.AtLeast(w, prev...))
		}
	}
}

func varLits(b *BaseModel) []solver.Literal {
	lits := make([]solver.Literal, len(b.Vars))
	for i, v := range b.Vars {
		lits[i] = solver.Pos(v)
	}

	return lits
}

// Hints builds an assumption-ordered hint list from a candidate
// relaxed solution: the configuration realizing independentTuples[i]
// is hinted onto slot i for the pinned prefix, and the remaining
// configurations are hinted onto the remaining slots in descending
// order of true-assignment count, mirroring how the original seeds
// the solver with its "fuller" configurations first. It panics if
// sample has more configurations than this model has slots.
func (mdl *Model) Hints(sample [][]bool, independentTuples []coverage.Tuple) []solver.Literal {
	if len(sample) > len(mdl.slots) {
		panic("subproblem: more configurations than slots")
	}

	order := make([]int, len(sample))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return trueCount(sample[order[a]]) > trueCount(sample[order[b]])
	})

	used := make([]bool, len(sample))
	pinned := len(independentTuples)
	if pinned > len(mdl.slots) {
		pinned = len(mdl.slots)
	}

	var hints []solver.Literal
	for i := 0; i < pinned; i++ {
		realizer := findRealizer(sample, used, independentTuples[i])
		if realizer < 0 {
			continue
		}
		used[realizer] = true
		hints = append(hints, slotHints(mdl.slots[i], sample[realizer])...)
	}

	slotIdx := pinned
	for _, k := range order {
		if used[k] || slotIdx >= len(mdl.slots) {
			continue
		}
		hints = append(hints, slotHints(mdl.slots[slotIdx], sample[k])...)
		slotIdx++
	}

	return hints
}

func findRealizer(sample [][]bool, used []bool, t coverage.Tuple) int {
	for k, conf := range sample {
		if used[k] {
			continue
		}
		if conf[t.I] == t.Pi && conf[t.J] == t.Pj {
			return k
		}
	}

	return -1
}

func trueCount(conf []bool) int {
	n := 0
	for _, b := range conf {
		if b {
			n++
		}
	}

	return n
}

func slotHints(s *slot, conf []bool) []solver.Literal {
	hints := make([]solver.Literal, 0, len(conf)+1)
	hints = append(hints, solver.Pos(s.active))
	for i, b := range conf {
		if b {
			hints = append(hints, solver.Pos(s.base.Vars[i]))
		} else {
			hints = append(hints, solver.Neg(s.base.Vars[i]))
		}
	}

	return hints
}

// Result is the outcome of solving a Model: lb is the best proved
// objective bound, ub is always the slot budget k, and Sample holds a
// feasible assignment of size <= k when one was found within the time
// budget.
type Result struct {
	LowerBound int
	UpperBound int
	Sample     [][]bool
	Improved   bool
}

// Solve searches within timeLimit, using hints as a best-effort
// assumption ordering. incumbentSize is the size of the sample this
// neighborhood would otherwise keep, used only to flag whether a
// feasible result actually improves on it.
func (mdl *Model) Solve(timeLimit time.Duration, hints []solver.Literal, incumbentSize int) Result {
	res := mdl.m.Build().Solve(timeLimit, hints)
	k := len(mdl.slots)

	switch res.Status {
	case solver.StatusInfeasible:
		return Result{LowerBound: k, UpperBound: k}
	case solver.StatusUnknown:
		return Result{LowerBound: res.LowerBound, UpperBound: k}
	default:
		sample := mdl.extractSample(res)

		return Result{
			LowerBound: res.Objective,
			UpperBound: k,
			Sample:     sample,
			Improved:   len(sample) < incumbentSize,
		}
	}
}

func (mdl *Model) extractSample(res solver.Result) [][]bool {
	var sample [][]bool
	for _, s := range mdl.slots {
		if !res.Value(s.active) {
			continue
		}
		conf := make([]bool, mdl.inst.NConcrete)
		for i := 0; i < mdl.inst.NConcrete; i++ {
			conf[i] = res.Value(s.base.Vars[i])
		}
		sample = append(sample, conf)
	}

	return sample
}
