package cds

import (
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnslog"
	"github.com/tubs-alg/samplns-go/txgraph"
)

// maxStall bounds a refinement run: it stops once this many
// consecutive destroy-and-repair iterations fail to grow the ITS.
const maxStall = 10

// Engine is the CDS engine (C5): it maintains a large independent
// tuple set over inst's transaction graph, usable both as a sample-
// size lower bound and as the subproblem model's symmetry breaker.
// The transaction graph is owned by the Engine for mutation — only
// SufficientRefutation ever prunes an edge from it — other components
// must treat it as read-only.
type Engine struct {
	inst      *preprocess.IndexedInstance
	graph     *txgraph.Graph
	nConcrete int
	counts    map[coverage.Tuple]int
	// rng backs the background worker's Improve loop once StartBackground
	// is running; queryRNG backs SubgraphQuery, called from the driver's
	// own thread. Two independent sources — rather than one shared
	// *rand.Rand, which is not safe for concurrent use — let both loops
	// run at once without a lock (spec §5: the two regions don't share
	// mutable state).
	rng      *rand.Rand
	queryRNG *rand.Rand
	log      *samplnslog.Logger

	best atomic.Pointer[[]coverage.Tuple]

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewEngine builds an Engine over inst's transaction graph and initial
// sample, publishing an initial greedy ITS as its first best.
func NewEngine(inst *preprocess.IndexedInstance, graph *txgraph.Graph, initialSample [][]bool, seed uint64, log *samplnslog.Logger) *Engine {
	e := &Engine{
		inst:      inst,
		graph:     graph,
		nConcrete: inst.NConcrete,
		counts:    coverageCounts(initialSample, inst.NConcrete),
		rng:       rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d)),
		queryRNG:  rand.New(rand.NewPCG(seed^0x9e3779b97f4a7c15, seed^0x853c49e6748fea9b)),
		log:       log,
		stopCh:    make(chan struct{}),
	}
	e.publish(greedyIndependentSet(e.graph, e.counts, nil, e.rng))
	e.log.Infof("cds: initial independent tuple set has %d tuples", e.GetLB())

	return e
}

func (e *Engine) publish(its []coverage.Tuple) {
	cp := append([]coverage.Tuple(nil), its...)
	e.best.Store(&cp)
}

// BestITS returns the most recently published independent tuple set.
func (e *Engine) BestITS() []coverage.Tuple {
	p := e.best.Load()
	if p == nil {
		return nil
	}

	return *p
}

// GetLB reports the current lower bound: the size of the best ITS.
func (e *Engine) GetLB() int { return len(e.BestITS()) }

// Improve runs the blocking destroy-and-repair improver from the
// current best ITS until budget expires or it reaches ub, publishing
// and returning the best ITS found.
func (e *Engine) Improve(budget time.Duration, ub int) []coverage.Tuple {
	deadline := time.Now().Add(budget)
	before := e.GetLB()
	improved := refine(e.graph, e.counts, nil, e.BestITS(), ub, deadline, maxStall, e.rng)
	e.publish(improved)
	if len(improved) > before {
		e.log.Infof("cds: improved independent tuple set from %d to %d tuples", before, len(improved))
	}

	return improved
}

// SubgraphQuery returns an ITS contained in candidates: the greedy
// constructor restricted to candidates, refined by the same LNS
// improver restricted to candidates, stopping early at ub, after
// maxStall non-improving iterations, or on time budget. Unlike
// Improve, it does not touch the engine's globally-published best.
// Called from the driver's own thread, so it uses queryRNG rather than
// the background worker's rng.
func (e *Engine) SubgraphQuery(candidates []coverage.Tuple, ub int, budget time.Duration) []coverage.Tuple {
	deadline := time.Now().Add(budget)
	initial := greedyIndependentSet(e.graph, e.counts, candidates, e.queryRNG)

	return refine(e.graph, e.counts, candidates, initial, ub, deadline, maxStall, e.queryRNG)
}

// StartBackground launches the long-lived worker that repeatedly
// improves the published best ITS, each iteration bounded by
// iterTimeLimit, until Stop is called.
func (e *Engine) StartBackground(iterTimeLimit time.Duration) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-e.stopCh:
				return
			default:
			}
			e.Improve(iterTimeLimit, math.MaxInt)
		}
	}()
}

// Stop signals the background worker to exit and waits for it to
// finish, so the caller can safely release the transaction graph
// afterward.
func (e *Engine) Stop() {
	close(e.stopCh)
	e.wg.Wait()
}

// SufficientRefutation decides whether e1 and e2 can ever be
// simultaneously realized, proving independence and pruning any
// spurious edge it discovers along the way.
//
// It is deliberately not called from greedyIndependentSet, refine, or
// the StartBackground loop: the CSP query it runs is orders of
// magnitude more expensive than the cheap necessary test those paths
// already use to keep the ITS valid, and skipping it there never
// produces an incorrect ITS — only a possibly-prunable edge left in
// place. It exists for callers (today, tests) willing to pay for the
// exact answer on a specific pair, e.g. to justify pruning an edge the
// cheap test cannot rule out on its own.
func (e *Engine) SufficientRefutation(e1, e2 coverage.Tuple, timeLimit time.Duration) bool {
	independent, spurious := sufficientRefutation(e.inst, e1, e2, timeLimit)
	for _, t := range spurious {
		e.graph.PruneEdge(coverage.VertexID(t.I, t.Pi), coverage.VertexID(t.J, t.Pj))
	}

	return independent
}
