package cds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
)

// altPairInstance builds a 2-concrete-feature instance where Alt(0,1)
// forces exactly one of them true.
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

func TestSufficientRefutation_ProvesIndependenceOfTheTwoAltConfigurations(t *testing.T) {
	inst := altPairInstance()
	e1 := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: false}
	e2 := coverage.Tuple{I: 0, J: 1, Pi: false, Pj: true}

	independent, spurious := sufficientRefutation(inst, e1, e2, time.Second)

	require.True(t, independent)
	assert.Empty(t, spurious)
}

func TestSufficientRefutation_FlagsATupleThatIsInfeasibleOnItsOwnAsSpurious(t *testing.T) {
	inst := altPairInstance()
	e1 := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: false}
	impossible := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: true} // alt forbids both true

	independent, spurious := sufficientRefutation(inst, impossible, e1, time.Second)

	require.True(t, independent)
	require.Len(t, spurious, 1)
	assert.Equal(t, impossible, spurious[0])
}
