package cds

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/txgraph"
)

func deadlineInOneSecond() time.Time { return time.Now().Add(time.Second) }

func TestGreedyIndependentSet_RejectsATupleWhenAllCrossPairsAreRealized(t *testing.T) {
	graph := txgraph.New(8)
	graph.AddValidConfiguration([]bool{true, true, true, true})
	counts := coverageCounts([][]bool{{true, true, true, true}}, 4)

	t1 := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: true}
	t2 := coverage.Tuple{I: 2, J: 3, Pi: true, Pj: true}

	its := greedyIndependentSet(graph, counts, []coverage.Tuple{t1, t2}, rand.New(rand.NewPCG(1, 2)))

	assert.Len(t, its, 1, "only one of two mutually-realized tuples should survive")
}

func TestGreedyIndependentSet_KeepsBothTuplesWhenNoCrossPairIsRealized(t *testing.T) {
	sample := [][]bool{
		{true, true, false, false},
		{false, false, true, true},
	}
	graph := txgraph.New(8)
	for _, conf := range sample {
		graph.AddValidConfiguration(conf)
	}
	counts := coverageCounts(sample, 4)

	t1 := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: true}
	t2 := coverage.Tuple{I: 2, J: 3, Pi: true, Pj: true}

	its := greedyIndependentSet(graph, counts, []coverage.Tuple{t1, t2}, rand.New(rand.NewPCG(3, 4)))

	assert.Len(t, its, 2)
}

func TestRefine_NeverShrinksTheStartingIts(t *testing.T) {
	sample := [][]bool{
		{true, true, false, false},
		{false, false, true, true},
	}
	graph := txgraph.New(8)
	for _, conf := range sample {
		graph.AddValidConfiguration(conf)
	}
	counts := coverageCounts(sample, 4)
	rng := rand.New(rand.NewPCG(5, 6))

	initial := greedyIndependentSet(graph, counts, nil, rng)
	refined := refine(graph, counts, nil, initial, len(initial)+5, deadlineInOneSecond(), maxStall, rng)

	assert.GreaterOrEqual(t, len(refined), len(initial))
}
