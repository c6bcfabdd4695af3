package lns

import (
	"time"

	"github.com/tubs-alg/samplns-go/neighborhood"
)

// Observer receives progress notifications from a Driver. Calls MUST
// NOT mutate driver state; implementations that need to react to a
// new solution should copy what they need and return promptly.
type Observer interface {
	ReportNewLB(lb int)
	ReportNewSolution(solution [][]bool)
	ReportNeighborhoodOptimization(n *neighborhood.Neighborhood)
	ReportIterationBegin(iteration int)
	ReportIterationEnd(iteration int, runtime time.Duration, lb int, solution [][]bool)
}

// NoopObserver implements Observer with no-op methods, the default a
// Driver falls back to when constructed with a nil Observer.
type NoopObserver struct{}

func (NoopObserver) ReportNewLB(int)                                              {}
func (NoopObserver) ReportNewSolution([][]bool)                                    {}
func (NoopObserver) ReportNeighborhoodOptimization(*neighborhood.Neighborhood)      {}
func (NoopObserver) ReportIterationBegin(int)                                       {}
func (NoopObserver) ReportIterationEnd(int, time.Duration, int, [][]bool)           {}
