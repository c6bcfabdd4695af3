// Package dsu provides a generic disjoint-set (union-find) structure
// with path compression and union by rank, generalized from the inline
// DSU used by the teacher's prim_kruskal.Kruskal (prim_kruskal/kruskal.go)
// into a reusable helper shared by the preprocessor's equivalence
// contraction and any other caller needing connectivity tracking over a
// dense integer universe.
package dsu

// DSU is a disjoint-set structure over the dense integer universe [0,n).
type DSU struct {
	parent []int
	rank   []int
}

// New allocates a DSU over n singleton elements.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set, compressing the path.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing a and b, attaching the lower-rank
// root under the higher-rank one. Returns the resulting representative.
func (d *DSU) Union(a, b int) int {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return ra
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return ra
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }
