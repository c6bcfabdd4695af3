package lns

import (
	"fmt"
	"time"

	"github.com/tubs-alg/samplns-go/cds"
	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/neighborhood"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
	"github.com/tubs-alg/samplns-go/samplnslog"
	"github.com/tubs-alg/samplns-go/subproblem"
)

// feasibilityCheckBudget bounds the one-time CSP call NewDriver makes
// per input configuration to confirm it is feasible. It is generous
// relative to the per-iteration budgets the hot loop uses, since this
// check runs once at startup, not per iteration.
const feasibilityCheckBudget = 30 * time.Second

// Driver is the LNS driver (C8). It owns the best-known sample and
// lower bound; the coverage index lives inside the neighborhood
// selector, and the transaction graph lives inside the CDS engine —
// the driver only ever reads through their public methods.
type Driver struct {
	inst          *preprocess.IndexedInstance
	selector      *neighborhood.Selector
	cds           *cds.Engine
	onNewSolution func([][]bool)
	observer      Observer
	log           *samplnslog.Logger

	lb   int
	pool [][][]bool
}

// NewDriver builds a Driver over inst, seeded with initialSolution,
// which must already be expressed in inst's indexed universe (spec
// §4.7 Initialization: "Convert the input sample to indexed-universe
// assignments" is the caller's job; NewDriver performs the next step,
// "verify each is feasible"). It returns an error wrapping
// samplnserr.ErrInfeasibleConfiguration if any configuration violates
// inst's tree structure or rules. If observer is nil, a NoopObserver
// is used.
func NewDriver(
	inst *preprocess.IndexedInstance,
	initialSolution [][]bool,
	selector *neighborhood.Selector,
	engine *cds.Engine,
	onNewSolution func([][]bool),
	observer Observer,
	log *samplnslog.Logger,
) (*Driver, error) {
	for i, conf := range initialSolution {
		if !subproblem.CheckFeasible(inst, conf, feasibilityCheckBudget) {
			return nil, fmt.Errorf("lns: initial configuration %d violates the model: %w", i, samplnserr.ErrInfeasibleConfiguration)
		}
	}

	if observer == nil {
		observer = NoopObserver{}
	}
	selector.Setup(inst.NConcrete, initialSolution)

	return &Driver{
		inst:          inst,
		selector:      selector,
		cds:           engine,
		onNewSolution: onNewSolution,
		observer:      observer,
		log:           log,
		pool:          [][][]bool{initialSolution},
	}, nil
}

// AddLowerBound raises the driver's known lower bound if lb is larger,
// reporting the change to the observer. The bound is monotonically
// non-decreasing by construction.
func (d *Driver) AddLowerBound(lb int) {
	if lb > d.lb {
		d.lb = lb
		d.observer.ReportNewLB(lb)
	}
}

// GetLowerBound returns the best lower bound proved so far.
func (d *Driver) GetLowerBound() int { return d.lb }

// GetBestSolution returns the smallest sample found so far.
func (d *Driver) GetBestSolution() [][]bool {
	best := d.pool[0]
	for _, s := range d.pool[1:] {
		if len(s) < len(best) {
			best = s
		}
	}

	return best
}

// GetSolutionPool returns the seed sample and every strictly smaller
// solution found during optimization.
func (d *Driver) GetSolutionPool() [][][]bool {
	out := make([][][]bool, len(d.pool))
	copy(out, d.pool)

	return out
}

func (d *Driver) addNewSolution(solution [][]bool) {
	d.pool = append(d.pool, solution)
	d.selector.AddSolution(solution)
	if d.onNewSolution != nil {
		d.onNewSolution(solution)
	}
	d.observer.ReportNewSolution(solution)
}

func (d *Driver) buildNeighborhoodModel(n *neighborhood.Neighborhood, independent []coverage.Tuple) *subproblem.Model {
	k := len(n.InitialSolution)
	model := subproblem.NewModel(d.inst, k)
	d.log.Debugf("using %d tuples to break symmetry", len(independent))
	model.BreakSymmetries(independent)
	for _, t := range n.MissingTuples {
		model.EnforceTuple(t)
	}

	return model
}

// OptimizeNeighborhood runs a single LNS iteration over n, bounded by
// deadline, and returns the neighborhood-local (lb, ub) — not the
// global bound. A new global-best solution is published internally
// when the subproblem finds one smaller than the neighborhood's
// current upper bound.
func (d *Driver) OptimizeNeighborhood(n *neighborhood.Neighborhood, deadline time.Time) (lb, ub int) {
	d.observer.ReportNeighborhoodOptimization(n)
	k := len(n.InitialSolution)

	if len(n.MissingTuples) == 0 {
		return 0, 0
	}
	if k <= 1 {
		return k, k
	}

	independent := d.cds.SubgraphQuery(n.MissingTuples, k, time.Until(deadline))
	if len(independent) == k {
		d.log.Debugf("neighborhood optimal by independent tuples alone")

		return k, k
	}

	model := d.buildNeighborhoodModel(n, independent)
	hints := model.Hints(n.InitialSolution, independent)

	remaining := time.Until(deadline)
	if remaining < time.Second {
		remaining = time.Second
	}

	res := model.Solve(remaining, hints, k)
	d.AddLowerBound(res.LowerBound)

	if res.Sample != nil && res.Improved {
		solution := make([][]bool, 0, len(n.Fixed)+len(res.Sample))
		solution = append(solution, n.Fixed...)
		solution = append(solution, res.Sample...)
		d.addNewSolution(solution)

		return res.LowerBound, len(res.Sample)
	}

	return res.LowerBound, k
}

// Optimize runs up to iterations LNS iterations, each bounded by
// iterationTimeLimit, within an overall totalTimeLimit budget. It
// returns whether the best solution was proved optimal.
func (d *Driver) Optimize(iterations int, iterationTimeLimit, totalTimeLimit time.Duration) bool {
	optDeadline := time.Now().Add(totalTimeLimit)

	d.cds.StartBackground(iterationTimeLimit)
	defer d.cds.Stop()

	d.AddLowerBound(d.cds.GetLB())

	for i := 0; i < iterations; i++ {
		if time.Now().After(optDeadline) {
			d.log.Infof("lns: global timeout after %d iterations", i)

			break
		}
		d.observer.ReportIterationBegin(i)
		iterStart := time.Now()
		iterDeadline := earlier(iterStart.Add(iterationTimeLimit), optDeadline)

		nbrhd := d.selector.Next()
		lb, ub := d.OptimizeNeighborhood(nbrhd, iterDeadline)

		d.AddLowerBound(d.cds.GetLB())
		runtime := time.Since(iterStart)
		d.observer.ReportIterationEnd(i, runtime, d.lb, d.GetBestSolution())

		completeAndOptimal := lb == ub && len(nbrhd.Fixed) == 0
		solutionMatchesLB := d.lb == len(d.GetBestSolution())
		if completeAndOptimal || solutionMatchesLB {
			return true
		}

		timeUtilization := float64(runtime) / float64(iterationTimeLimit)
		d.selector.Feedback(nbrhd, ub, lb, timeUtilization)
	}

	return false
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
