package txgraph

import (
	"sync"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/internal/bitset"
)

// Graph is the transaction graph: an undirected adjacency structure over
// [0, NumVertices) signed-literal vertices, backed by one packed bitset
// row per vertex. All mutation and query methods take separate read and
// write locks (mu), so the CDS background worker can query concurrently
// with the driver reading an in-progress snapshot.
type Graph struct {
	mu       sync.RWMutex
	n        int
	adj      []*bitset.Set
	numEdges int
}

// New allocates an edgeless Graph over nVertices signed-literal
// vertices (2*n_concrete, per coverage.VertexID).
func New(nVertices int) *Graph {
	adj := make([]*bitset.Set, nVertices)
	for i := range adj {
		adj[i] = bitset.New(nVertices)
	}

	return &Graph{n: nVertices, adj: adj}
}

// NumVertices returns the size of the vertex universe.
func (g *Graph) NumVertices() int { return g.n }

// AddValidConfiguration adds every pairwise edge induced by conf, a
// fully-defined assignment over concrete features (conf[i] is the
// Boolean value of concrete feature i).
//
// Complexity: O(n_concrete²) per call.
func (g *Graph) AddValidConfiguration(conf []bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(conf)
	for i := 0; i < n; i++ {
		vi := coverage.VertexID(i, conf[i])
		for j := i + 1; j < n; j++ {
			vj := coverage.VertexID(j, conf[j])
			if g.adj[vi].Test(vj) {
				continue
			}
			g.adj[vi].Set(vj)
			g.adj[vj].Set(vi)
			g.numEdges++
		}
	}
}

// HasEdge reports whether vertices u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[u].Test(v)
}

// Neighbors returns every vertex adjacent to v, ascending order.
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	g.adj[v].Each(func(w int) bool {
		out = append(out, w)

		return true
	})

	return out
}

// Degree returns the number of vertices adjacent to v.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v].Count()
}

// NumEdges returns |E|.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Edges calls fn once for every edge (u,v), u<v, stopping early if fn
// returns false.
func (g *Graph) Edges(fn func(u, v int) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u := 0; u < g.n; u++ {
		stop := false
		g.adj[u].Each(func(v int) bool {
			if v <= u {
				return true
			}
			if !fn(u, v) {
				stop = true

				return false
			}

			return true
		})
		if stop {
			return
		}
	}
}

// PruneEdge removes edge (u,v), a no-op if absent. This is the only
// mutation permitted after construction — the CDS engine calls it once
// a sufficient-refutation CSP call proves the cross-pair infeasible.
func (g *Graph) PruneEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.adj[u].Test(v) {
		return
	}
	g.adj[u].Clear(v)
	g.adj[v].Clear(u)
	g.numEdges--
}
