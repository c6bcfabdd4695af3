package subproblem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/subproblem"
)

func TestModel_SolvesTwoSlotsToCoverBothAltConfigurations(t *testing.T) {
	inst := altInstance()
	mdl := subproblem.NewModel(inst, 2)

	tA := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: false}
	tB := coverage.Tuple{I: 0, J: 1, Pi: false, Pj: true}
	mdl.EnforceTuple(tA)
	mdl.EnforceTuple(tB)

	res := mdl.Solve(time.Second, nil, 3)

	require.Equal(t, 2, res.UpperBound)
	require.Equal(t, 2, res.LowerBound)
	require.Len(t, res.Sample, 2)
	assert.True(t, res.Improved)

	sawA, sawB := false, false
	for _, conf := range res.Sample {
		if conf[0] == tA.Pi && conf[1] == tA.Pj {
			sawA = true
		}
		if conf[0] == tB.Pi && conf[1] == tB.Pj {
			sawB = true
		}
	}
	assert.True(t, sawA, "expected some slot to realize tA")
	assert.True(t, sawB, "expected some slot to realize tB")
}

func TestModel_BreakSymmetriesPinsIndependentTuplesToTheirSlots(t *testing.T) {
	inst := altInstance()
	mdl := subproblem.NewModel(inst, 2)

	tA := coverage.Tuple{I: 0, J: 1, Pi: true, Pj: false}
	tB := coverage.Tuple{I: 0, J: 1, Pi: false, Pj: true}
	mdl.EnforceTuple(tA)
	mdl.EnforceTuple(tB)
	mdl.BreakSymmetries([]coverage.Tuple{tA, tB})

	res := mdl.Solve(time.Second, nil, 3)

	require.Len(t, res.Sample, 2)
	assert.Equal(t, tA.Pi, res.Sample[0][0])
	assert.Equal(t, tA.Pj, res.Sample[0][1])
	assert.Equal(t, tB.Pi, res.Sample[1][0])
	assert.Equal(t, tB.Pj, res.Sample[1][1])
}

func TestModel_HintsRejectsMoreConfigurationsThanSlots(t *testing.T) {
	inst := altInstance()
	mdl := subproblem.NewModel(inst, 1)

	assert.Panics(t, func() {
		mdl.Hints([][]bool{{true, false}, {false, true}}, nil)
	})
}
