package modelio_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/modelio"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

const sampleDIMACS = `c 1 A
c 2 B
c 3 C
p cnf 3 2
1 -2 0
2 3 0
`

func TestParseDIMACS_BuildsARuleOnlyInstance(t *testing.T) {
	inst, err := modelio.ParseDIMACS(strings.NewReader(sampleDIMACS))

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, inst.Features)
	assert.Nil(t, inst.Structure)
	assert.Len(t, inst.Rules, 2)
}

func TestParseDIMACS_RoundTripsThroughPreprocessingAndTheSolver(t *testing.T) {
	inst, err := modelio.ParseDIMACS(strings.NewReader(sampleDIMACS))
	require.NoError(t, err)

	indexed, err := preprocess.NewPreprocessor().Preprocess(inst)
	require.NoError(t, err)

	m := solver.NewModel()
	subproblem.EncodeInstance(indexed, m)
	res := m.Build().Solve(time.Second, nil)

	require.Equal(t, solver.StatusFeasible, res.Status)
}

func TestParseDIMACS_ErrorsOnVariableCountMismatch(t *testing.T) {
	const bad = `c 1 A
p cnf 2 1
1 0
`
	_, err := modelio.ParseDIMACS(strings.NewReader(bad))

	require.Error(t, err)
}

func TestParseDIMACS_ErrorsOnAnEmptyClause(t *testing.T) {
	const bad = `c 1 A
p cnf 1 1
0
`
	_, err := modelio.ParseDIMACS(strings.NewReader(bad))

	require.Error(t, err)
}

func TestParseDIMACS_ErrorsOnDuplicateVariableName(t *testing.T) {
	const bad = `c 1 A
c 2 A
p cnf 2 1
1 2 0
`
	_, err := modelio.ParseDIMACS(strings.NewReader(bad))

	require.Error(t, err)
}
