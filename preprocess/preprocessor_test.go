package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

func TestPreprocessor_MergesVariableEquivalenceRule(t *testing.T) {
	eq := feature.NewEq(&feature.VarF{Name: "A"}, &feature.VarF{Name: "B"})
	inst := &preprocess.Instance{
		Name:     "eq",
		Features: []feature.Label{"A", "B"},
		Rules:    []feature.Formula{eq},
	}

	out, err := preprocess.NewPreprocessor().Preprocess(inst)
	require.NoError(t, err)

	assert.Equal(t, 1, out.NConcrete)
	assert.Equal(t, 1, out.NAll)
	assert.Empty(t, out.Rules)
}

func TestPreprocessor_MandatoryChildEquivalence(t *testing.T) {
	nodes := []feature.Node{
		{Kind: feature.KindAnd, Literal: feature.Literal{Var: "root"}, Children: []int{1}},
		{Kind: feature.KindConcrete, Literal: feature.Literal{Var: "A"}, Mandatory: true},
	}
	tr := feature.NewTree(nodes, 0)
	inst := &preprocess.Instance{
		Name:      "mandatory",
		Features:  []feature.Label{"A"},
		Structure: tr,
	}

	out, err := preprocess.NewPreprocessor().Preprocess(inst)
	require.NoError(t, err)

	assert.Equal(t, 1, out.NConcrete)
	assert.Equal(t, 1, out.NAll)
	// root and its mandatory child collapsed to the same index.
	assert.Equal(t, out.Structure.Nodes[out.Structure.Root].Literal.Var,
		out.Structure.Nodes[out.Structure.Nodes[out.Structure.Root].Children[0]].Literal.Var)
}

func TestPreprocessor_ContradictionReturnsInconsistentModelError(t *testing.T) {
	eq1 := feature.NewEq(&feature.VarF{Name: "A"}, &feature.VarF{Name: "B"})
	eq2 := feature.NewEq(&feature.VarF{Name: "A"}, &feature.VarF{Name: "B", Negated: true})
	inst := &preprocess.Instance{
		Name:     "contradiction",
		Features: []feature.Label{"A", "B"},
		Rules:    []feature.Formula{eq1, eq2},
	}

	_, err := preprocess.NewPreprocessor().Preprocess(inst)
	assert.ErrorIs(t, err, samplnserr.ErrInconsistentModel)
}

func TestPreprocessor_CNFLoweringFlattensTopLevelConjunction(t *testing.T) {
	impl1 := feature.NewImpl(&feature.VarF{Name: "A"}, &feature.VarF{Name: "B"})
	impl2 := feature.NewImpl(&feature.VarF{Name: "C"}, &feature.VarF{Name: "D"})
	conj, err := feature.NewAnd(impl1, impl2)
	require.NoError(t, err)

	inst := &preprocess.Instance{
		Name:     "cnf",
		Features: []feature.Label{"A", "B", "C", "D"},
		Rules:    []feature.Formula{conj},
	}

	out, err := preprocess.NewPreprocessor().Preprocess(inst)
	require.NoError(t, err)
	assert.Len(t, out.Rules, 2)
}

func TestPreprocessor_RoundTripsThroughOriginalUniverse(t *testing.T) {
	impl := feature.NewImpl(&feature.VarF{Name: "A"}, &feature.VarF{Name: "B"})
	inst2 := &preprocess.Instance{
		Name:     "roundtrip",
		Features: []feature.Label{"A", "B"},
		Rules:    []feature.Formula{impl},
	}

	out, err := preprocess.NewPreprocessor().Preprocess(inst2)
	require.NoError(t, err)

	indexed := feature.Assignment{"0": true, "1": false}
	original := out.ToOriginal.ToOriginalUniverse(indexed)
	assert.Equal(t, true, original["A"])
	assert.Equal(t, false, original["B"])
}
