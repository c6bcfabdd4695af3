package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubs-alg/samplns-go/coverage"
)

func TestVertexID_PreservesFeatureOrdering(t *testing.T) {
	assert.Less(t, coverage.VertexID(0, true), coverage.VertexID(1, false))
	assert.Less(t, coverage.VertexID(1, true), coverage.VertexID(2, false))
}

func TestFeatureOf_InvertsVertexID(t *testing.T) {
	for feat := 0; feat < 5; feat++ {
		for _, pol := range []bool{true, false} {
			f, p := coverage.FeatureOf(coverage.VertexID(feat, pol))
			assert.Equal(t, feat, f)
			assert.Equal(t, pol, p)
		}
	}
}

func TestNewIndex_ComputesFeasibleTuplesFromSample(t *testing.T) {
	// Two configurations over 3 concrete features.
	sample := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	idx := coverage.NewIndex(sample, 3)

	// Each configuration contributes C(3,2)=3 tuples, disjoint here
	// since the two configurations never agree on any feature.
	assert.Equal(t, 6, idx.NumFeasible())
	assert.True(t, idx.IsFeasibleTuple(coverage.Tuple{I: 0, Pi: true, J: 1, Pj: false}))
	assert.False(t, idx.IsFeasibleTuple(coverage.Tuple{I: 0, Pi: true, J: 1, Pj: true}))
}

func TestIndex_CoverReducesMissingSet(t *testing.T) {
	sample := [][]bool{{true, false, true}}
	idx := coverage.NewIndex(sample, 3)

	assert.Equal(t, 3, idx.NumMissing())

	idx.Cover(map[int]bool{0: true, 1: false, 2: true})
	assert.Equal(t, 0, idx.NumMissing())
}

func TestIndex_CoverOnlyClearsFeasibleTuples(t *testing.T) {
	sample := [][]bool{{true, false}}
	idx := coverage.NewIndex(sample, 2)
	before := idx.NumMissing()

	// This configuration shares no feasible tuple with the sample.
	idx.Cover(map[int]bool{0: false, 1: true})
	assert.Equal(t, before, idx.NumMissing())
}

func TestIndex_ClearResetsToFullFeasibleSet(t *testing.T) {
	sample := [][]bool{{true, false, true}}
	idx := coverage.NewIndex(sample, 3)
	idx.Cover(map[int]bool{0: true, 1: false, 2: true})
	a := assert.New(t)
	a.Equal(0, idx.NumMissing())

	idx.Clear()
	a.Equal(idx.NumFeasible(), idx.NumMissing())
}

func TestIndex_MissingIsSubsetOfFeasible(t *testing.T) {
	sample := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	idx := coverage.NewIndex(sample, 3)
	idx.Cover(map[int]bool{0: true, 1: false, 2: true})

	for _, tup := range idx.Missing() {
		assert.True(t, idx.IsFeasibleTuple(tup))
	}
}
