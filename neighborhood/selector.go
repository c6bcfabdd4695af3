package neighborhood

import (
	"math/rand/v2"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/samplnslog"
)

// Configuration is a fully-defined assignment over a feature model's
// concrete features, in feature-index order.
type Configuration = []bool

// Neighborhood is one destroy/repair unit: a fixed part left
// untouched and a free part whose MissingTuples a subproblem solve
// must cover, seeded with an initial (feasible but possibly
// non-minimal) relaxed solution.
type Neighborhood struct {
	Fixed           []Configuration
	MissingTuples   []coverage.Tuple
	InitialSolution []Configuration
}

// FullSolution returns the complete sample this neighborhood was cut
// from: the fixed configurations plus relaxed if given, or the
// neighborhood's own initial relaxed solution otherwise.
func (n *Neighborhood) FullSolution(relaxed []Configuration) []Configuration {
	if relaxed == nil {
		relaxed = n.InitialSolution
	}
	out := make([]Configuration, 0, len(n.Fixed)+len(relaxed))
	out = append(out, n.Fixed...)
	out = append(out, relaxed...)

	return out
}

// GlobalUB returns the size of the full solution this neighborhood was
// cut from.
func (n *Neighborhood) GlobalUB() int {
	return len(n.Fixed) + len(n.InitialSolution)
}

const (
	defaultMaxFreeTuples = 250
	defaultIncrFactor    = 1.25
	defaultDecrFactor    = 0.75
)

// Selector picks neighborhoods and adapts their target size from the
// driver's feedback: widen after a neighborhood solves to optimality,
// narrow when the remaining gap stays wide.
type Selector struct {
	log        *samplnslog.Logger
	nConcrete  int
	best       []Configuration
	coverage   *coverage.Index
	n          float64
	incrFactor float64
	decrFactor float64
	rng        *rand.Rand
}

// NewSelector builds a Selector with the original's default sizing
// parameters, deterministically seeded so two runs with identical
// seeds pick identical neighborhoods.
func NewSelector(seed uint64, log *samplnslog.Logger) *Selector {
	return &Selector{
		log:        log,
		n:          defaultMaxFreeTuples,
		incrFactor: defaultIncrFactor,
		decrFactor: defaultDecrFactor,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Setup primes the selector with the instance's concrete-feature count
// and an initial feasible sample; it is the selector's second
// constructor, called once an instance is available.
func (s *Selector) Setup(nConcrete int, initialSolution []Configuration) {
	s.log.Infof("setting up random neighborhood selector")
	s.nConcrete = nConcrete
	s.best = initialSolution
	s.coverage = coverage.NewIndex(initialSolution, nConcrete)
	s.log.Infof("neighborhood selector is ready")
}

// AddSolution replaces the best-known solution if solution is smaller.
func (s *Selector) AddSolution(solution []Configuration) {
	if s.best == nil || len(solution) < len(s.best) {
		s.best = solution
	}
}

// Next returns the next neighborhood: configurations are peeled off
// the best solution at random into the fixed part until fewer than n
// tuples remain missing (or no configuration is left to peel); the
// rest stays as the initial relaxed solution.
func (s *Selector) Next() *Neighborhood {
	relaxed := append([]Configuration(nil), s.best...)
	var fixed []Configuration
	s.coverage.Clear()

	for s.coverage.NumMissing() >= int(s.n) && len(relaxed) > 0 {
		idx := s.rng.IntN(len(relaxed))
		conf := relaxed[idx]
		relaxed = append(relaxed[:idx], relaxed[idx+1:]...)
		s.coverage.Cover(toMap(conf))
		fixed = append(fixed, conf)
	}

	return &Neighborhood{
		Fixed:           fixed,
		MissingTuples:   s.coverage.Missing(),
		InitialSolution: relaxed,
	}
}

func toMap(conf Configuration) map[int]bool {
	m := make(map[int]bool, len(conf))
	for i, b := range conf {
		m[i] = b
	}

	return m
}

// Feedback adapts the neighborhood size from a subproblem's result on
// the previous neighborhood: widen when the solve proved optimal
// (lb==ub), narrow when the remaining gap is still wide relative to
// ub (lb/ub <= 0.9). timeUtilization is accepted for interface parity
// with the driver's observer calls but unused by this strategy.
func (s *Selector) Feedback(on *Neighborhood, ub, lb int, timeUtilization float64) {
	_ = on
	_ = timeUtilization
	if lb == ub {
		s.increase()
	}
	if ub != 0 && float64(lb)/float64(ub) <= 0.9 {
		s.decrease()
	}
}

func (s *Selector) increase() {
	s.n *= s.incrFactor
	s.log.Infof("increasing neighborhood size to %.0f tuples", s.n)
}

func (s *Selector) decrease() {
	s.n *= s.decrFactor
	s.log.Infof("decreasing neighborhood size to %.0f tuples", s.n)
}
