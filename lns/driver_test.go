package lns_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/cds"
	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/lns"
	"github.com/tubs-alg/samplns-go/neighborhood"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/txgraph"
)

// altPairInstance builds a 2-concrete-feature instance where Alt(0,1)
// forces exactly one of them true, so a sample of 2 configurations is
// already a minimal, fully-covering sample.
func altPairInstance() *preprocess.IndexedInstance {
	nodes := []feature.Node{
		{Kind: feature.KindConcrete, Literal: feature.Literal{Var: "0"}},
		{Kind: feature.KindConcrete, Literal: feature.Literal{Var: "1"}},
		{Kind: feature.KindAlt, Literal: feature.Literal{Var: "2"}, Children: []int{0, 1}},
	}

	return &preprocess.IndexedInstance{
		Structure: feature.NewTree(nodes, 2),
		NConcrete: 2,
		NAll:      3,
	}
}

func newTestDriver(t *testing.T, sample [][]bool) *lns.Driver {
	t.Helper()
	inst := altPairInstance()
	graph := txgraph.New(4)
	for _, conf := range sample {
		graph.AddValidConfiguration(conf)
	}
	engine := cds.NewEngine(inst, graph, sample, 7, nil)
	selector := neighborhood.NewSelector(11, nil)

	d, err := lns.NewDriver(inst, sample, selector, engine, nil, nil, nil)
	require.NoError(t, err)

	return d
}

func TestDriver_OptimizeConvergesOnAnAlreadyMinimalSample(t *testing.T) {
	sample := [][]bool{{true, false}, {false, true}}
	d := newTestDriver(t, sample)

	optimal := d.Optimize(5, 200*time.Millisecond, time.Second)

	assert.True(t, optimal)
	assert.LessOrEqual(t, len(d.GetBestSolution()), len(sample))
}

func TestDriver_GetBestSolutionStartsAsTheSeedSample(t *testing.T) {
	sample := [][]bool{{true, false}, {false, true}}
	d := newTestDriver(t, sample)

	assert.Equal(t, sample, d.GetBestSolution())
}

func TestDriver_GetSolutionPoolIncludesTheSeedSample(t *testing.T) {
	sample := [][]bool{{true, false}, {false, true}}
	d := newTestDriver(t, sample)

	pool := d.GetSolutionPool()

	require.Len(t, pool, 1)
	assert.Equal(t, sample, pool[0])
}

func TestDriver_OptimizeNeighborhoodSkipsSolvingWhenNoTuplesAreMissing(t *testing.T) {
	sample := [][]bool{{true, false}, {false, true}}
	d := newTestDriver(t, sample)

	n := &neighborhood.Neighborhood{
		Fixed:           sample,
		MissingTuples:   nil,
		InitialSolution: nil,
	}
	lb, ub := d.OptimizeNeighborhood(n, time.Now().Add(time.Second))

	assert.Equal(t, 0, lb)
	assert.Equal(t, 0, ub)
}
