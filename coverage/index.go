package coverage

import "github.com/tubs-alg/samplns-go/internal/bitset"

// Index is the coverage index (C3): an immutable feasible-tuple set
// derived from an initial sample, plus a mutable missing subset.
// missing_tuples is always a subset of feasible_tuples — Cover only
// ever clears bits already present in feasible, and Clear resets
// missing back to exactly feasible.
//
// Complexity: Cover is O(n_concrete²) worst case per call; NumMissing
// and Missing are O(n_vertices²/64) amortized via the packed bitset
// representation.
type Index struct {
	nConcrete   int
	nVertices   int
	feasible    []*bitset.Set // feasible[v].Test(w), w>v, iff (v,w) is a feasible tuple
	missing     []*bitset.Set
	numFeasible int
}

// NewIndex computes the feasible-tuple set from sample, a slice of
// fully-defined concrete-feature assignments: sample[k][i] is the
// Boolean value of concrete feature i in the k-th configuration.
func NewIndex(sample [][]bool, nConcrete int) *Index {
	nVertices := 2 * nConcrete
	idx := &Index{
		nConcrete: nConcrete,
		nVertices: nVertices,
		feasible:  make([]*bitset.Set, nVertices),
		missing:   make([]*bitset.Set, nVertices),
	}
	for v := 0; v < nVertices; v++ {
		idx.feasible[v] = bitset.New(nVertices)
		idx.missing[v] = bitset.New(nVertices)
	}
	for _, conf := range sample {
		idx.addConfiguration(conf)
	}
	idx.Clear()
	idx.numFeasible = idx.sumRows(idx.feasible)

	return idx
}

func (idx *Index) addConfiguration(conf []bool) {
	for i := 0; i < idx.nConcrete; i++ {
		vi := VertexID(i, conf[i])
		for j := i + 1; j < idx.nConcrete; j++ {
			vj := VertexID(j, conf[j])
			idx.feasible[vi].Set(vj)
			idx.feasible[vj].Set(vi)
		}
	}
}

func (idx *Index) sumRows(rows []*bitset.Set) int {
	total := 0
	for _, r := range rows {
		total += r.Count()
	}

	return total / 2
}

// Cover removes, for every pair of concrete feature assignments present
// in config, the corresponding tuple from the missing set.
func (idx *Index) Cover(config map[int]bool) {
	for i := 0; i < idx.nConcrete; i++ {
		pi, ok := config[i]
		if !ok {
			continue
		}
		vi := VertexID(i, pi)
		for j := i + 1; j < idx.nConcrete; j++ {
			pj, ok := config[j]
			if !ok {
				continue
			}
			vj := VertexID(j, pj)
			idx.missing[vi].Clear(vj)
			idx.missing[vj].Clear(vi)
		}
	}
}

// Missing returns every currently-missing tuple. Iteration order is
// ascending vertex order — implementation-defined but stable within one
// pass, as the invariant requires.
func (idx *Index) Missing() []Tuple {
	var out []Tuple
	for v := 0; v < idx.nVertices; v++ {
		idx.missing[v].Each(func(w int) bool {
			if w > v {
				fi, pi := FeatureOf(v)
				fj, pj := FeatureOf(w)
				out = append(out, Tuple{I: fi, Pi: pi, J: fj, Pj: pj})
			}

			return true
		})
	}

	return out
}

// NumMissing reports the size of the current missing set.
func (idx *Index) NumMissing() int { return idx.sumRows(idx.missing) }

// NumFeasible reports |feasible_tuples|.
func (idx *Index) NumFeasible() int { return idx.numFeasible }

// NConcrete returns the number of concrete features this index was
// built over.
func (idx *Index) NConcrete() int { return idx.nConcrete }

// Clear resets the missing set back to the full feasible set.
func (idx *Index) Clear() {
	for v := 0; v < idx.nVertices; v++ {
		idx.missing[v].CopyFrom(idx.feasible[v])
	}
}

// IsFeasibleTuple reports whether t belongs to the immutable feasible
// set. Tuples outside this set must never be exposed to callers.
func (idx *Index) IsFeasibleTuple(t Tuple) bool {
	vi := VertexID(t.I, t.Pi)
	vj := VertexID(t.J, t.Pj)

	return idx.feasible[vi].Test(vj)
}
