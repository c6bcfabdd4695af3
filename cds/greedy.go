package cds

import (
	"math/rand/v2"
	"sort"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/txgraph"
)

// coverageCounts tallies, for every tuple realized by at least one
// configuration of sample, how many configurations realize it — the
// expected-difficulty heuristic the greedy constructor sorts by:
// rarer tuples are harder to place later and are tried first.
func coverageCounts(sample [][]bool, nConcrete int) map[coverage.Tuple]int {
	counts := make(map[coverage.Tuple]int)
	for _, conf := range sample {
		for i := 0; i < nConcrete; i++ {
			for j := i + 1; j < nConcrete; j++ {
				counts[coverage.Tuple{I: i, J: j, Pi: conf[i], Pj: conf[j]}]++
			}
		}
	}

	return counts
}

// sortByDifficulty returns a random-shuffled-then-stable-sorted copy
// of pool, ascending by counts. Shuffling before the stable sort
// randomizes the order among equally-difficult tuples without biasing
// the overall difficulty ordering.
func sortByDifficulty(pool []coverage.Tuple, counts map[coverage.Tuple]int, rng *rand.Rand) []coverage.Tuple {
	sorted := append([]coverage.Tuple(nil), pool...)
	rng.Shuffle(len(sorted), func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })
	sort.SliceStable(sorted, func(i, j int) bool { return counts[sorted[i]] < counts[sorted[j]] })

	return sorted
}

// candidatePool returns candidates, or every tuple with a known
// coverage count when candidates is nil.
func candidatePool(candidates []coverage.Tuple, counts map[coverage.Tuple]int) []coverage.Tuple {
	if candidates != nil {
		return candidates
	}

	pool := make([]coverage.Tuple, 0, len(counts))
	for t := range counts {
		pool = append(pool, t)
	}

	return pool
}

// greedyIndependentSet walks candidates (or every known tuple) in
// ascending-difficulty order, keeping a tuple whenever the cheap
// cross-pair test against every tuple already kept succeeds.
func greedyIndependentSet(graph *txgraph.Graph, counts map[coverage.Tuple]int, candidates []coverage.Tuple, rng *rand.Rand) []coverage.Tuple {
	var its []coverage.Tuple
	for _, t := range sortByDifficulty(candidatePool(candidates, counts), counts, rng) {
		if isIndependent(graph, t, its) {
			its = append(its, t)
		}
	}

	return its
}

// isIndependent reports whether t can be added to its without
// violating the necessary condition against any tuple already kept:
// two tuples (a,b) and (c,d) can possibly share a configuration only
// if every cross pair (a,c),(a,d),(b,c),(b,d) is also an edge of the
// transaction graph: if so, they're NOT provably independent and t is
// rejected.
func isIndependent(graph *txgraph.Graph, t coverage.Tuple, its []coverage.Tuple) bool {
	v, w := coverage.VertexID(t.I, t.Pi), coverage.VertexID(t.J, t.Pj)
	for _, existing := range its {
		vp := coverage.VertexID(existing.I, existing.Pi)
		wp := coverage.VertexID(existing.J, existing.Pj)
		if isFeasiblePair(graph, v, vp) && isFeasiblePair(graph, v, wp) &&
			isFeasiblePair(graph, w, vp) && isFeasiblePair(graph, w, wp) {
			return false
		}
	}

	return true
}

func isFeasiblePair(graph *txgraph.Graph, a, b int) bool {
	if a == b {
		return true
	}

	return graph.HasEdge(a, b)
}
