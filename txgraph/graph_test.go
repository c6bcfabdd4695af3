package txgraph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/txgraph"
)

func TestGraph_AddValidConfiguration_AddsEveryPairwiseEdge(t *testing.T) {
	g := txgraph.New(6) // 3 concrete features
	g.AddValidConfiguration([]bool{true, false, true})

	v0, v1, v2 := coverage.VertexID(0, true), coverage.VertexID(1, false), coverage.VertexID(2, true)
	assert.True(t, g.HasEdge(v0, v1))
	assert.True(t, g.HasEdge(v1, v2))
	assert.True(t, g.HasEdge(v0, v2))
	assert.Equal(t, 3, g.NumEdges())
}

func TestGraph_AddValidConfiguration_IsIdempotentOnEdgeCount(t *testing.T) {
	g := txgraph.New(4)
	g.AddValidConfiguration([]bool{true, false})
	g.AddValidConfiguration([]bool{true, false})
	assert.Equal(t, 1, g.NumEdges())
}

func TestGraph_DegreeAndNeighbors(t *testing.T) {
	g := txgraph.New(6)
	g.AddValidConfiguration([]bool{true, false, true})

	v0 := coverage.VertexID(0, true)
	assert.Equal(t, 2, g.Degree(v0))
	assert.ElementsMatch(t,
		[]int{coverage.VertexID(1, false), coverage.VertexID(2, true)},
		g.Neighbors(v0),
	)
}

func TestGraph_PruneEdge_RemovesEdgeBothDirections(t *testing.T) {
	g := txgraph.New(4)
	g.AddValidConfiguration([]bool{true, false})
	v0, v1 := coverage.VertexID(0, true), coverage.VertexID(1, false)

	g.PruneEdge(v0, v1)
	assert.False(t, g.HasEdge(v0, v1))
	assert.False(t, g.HasEdge(v1, v0))
	assert.Equal(t, 0, g.NumEdges())
}

func TestGraph_PruneEdge_AbsentIsNoOp(t *testing.T) {
	g := txgraph.New(4)
	g.PruneEdge(0, 1)
	assert.Equal(t, 0, g.NumEdges())
}

func TestGraph_Edges_VisitsEachEdgeOnceWithLowerVertexFirst(t *testing.T) {
	g := txgraph.New(6)
	g.AddValidConfiguration([]bool{true, false, true})

	var seen [][2]int
	g.Edges(func(u, v int) bool {
		seen = append(seen, [2]int{u, v})

		return true
	})
	assert.Len(t, seen, 3)
	for _, e := range seen {
		assert.Less(t, e[0], e[1])
	}
}

func TestGraph_ConcurrentReadsDuringWrite(t *testing.T) {
	g := txgraph.New(20)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		g.AddValidConfiguration([]bool{true, false, true, false, true, false, true, false, true, false})
	}()
	go func() {
		defer wg.Done()
		_ = g.Degree(0)
		_ = g.NumEdges()
	}()
	wg.Wait()
}
