package cds

import (
	"math/rand/v2"
	"time"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/txgraph"
)

// refine runs iterative destroy-and-repair LNS starting from current,
// restricted to candidates (or every known tuple when candidates is
// nil). It stops once the ITS reaches ub, after maxStall consecutive
// non-improving iterations, or once deadline passes — whichever comes
// first — and never returns an ITS smaller than current.
func refine(
	graph *txgraph.Graph,
	counts map[coverage.Tuple]int,
	candidates []coverage.Tuple,
	current []coverage.Tuple,
	ub int,
	deadline time.Time,
	maxStall int,
	rng *rand.Rand,
) []coverage.Tuple {
	best := append([]coverage.Tuple(nil), current...)
	stall := 0

	for step := 0; len(best) < ub && stall < maxStall; step++ {
		if step&63 == 0 && time.Now().After(deadline) {
			break
		}

		destroyCount := len(best) / 4
		if destroyCount < 1 {
			destroyCount = 1
		}
		if destroyCount > len(best) {
			destroyCount = len(best)
		}

		kept := removeRandomSubset(best, destroyCount, rng)
		rebuilt := repair(graph, counts, candidates, kept, rng)

		if len(rebuilt) > len(best) {
			best = rebuilt
			stall = 0
		} else {
			stall++
		}
	}

	return best
}

// removeRandomSubset returns its with a uniformly random destroyCount
// elements removed.
func removeRandomSubset(its []coverage.Tuple, destroyCount int, rng *rand.Rand) []coverage.Tuple {
	shuffled := append([]coverage.Tuple(nil), its...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return append([]coverage.Tuple(nil), shuffled[destroyCount:]...)
}

// repair greedily re-extends kept with tuples from candidates (or
// every known tuple), in ascending-difficulty order, skipping what's
// already present — the "repair" half of destroy-and-repair.
func repair(graph *txgraph.Graph, counts map[coverage.Tuple]int, candidates []coverage.Tuple, kept []coverage.Tuple, rng *rand.Rand) []coverage.Tuple {
	present := make(map[coverage.Tuple]bool, len(kept))
	for _, t := range kept {
		present[t] = true
	}

	its := append([]coverage.Tuple(nil), kept...)
	for _, t := range sortByDifficulty(candidatePool(candidates, counts), counts, rng) {
		if present[t] {
			continue
		}
		if isIndependent(graph, t, its) {
			its = append(its, t)
			present[t] = true
		}
	}

	return its
}
