package subproblem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

func orInstance() *preprocess.IndexedInstance {
	nodes := []feature.Node{
		{Kind: feature.KindConcrete, Literal: feature.Literal{Var: "0"}},
		{Kind: feature.KindConcrete, Literal: feature.Literal{Var: "1"}},
		{Kind: feature.KindOr, Literal: feature.Literal{Var: "2"}, Children: []int{0, 1}},
	}

	return &preprocess.IndexedInstance{
		Structure: feature.NewTree(nodes, 2),
		NConcrete: 2,
		NAll:      3,
	}
}

func altInstance() *preprocess.IndexedInstance {
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

func TestEncodeInstance_OrRequiresAtLeastOneActiveChild(t *testing.T) {
	inst := orInstance()
	m := solver.NewModel()
	bm := subproblem.EncodeInstance(inst, m)

	res := m.Build().Solve(time.Second, nil)

	require.Equal(t, solver.StatusFeasible, res.Status)
	assert.True(t, res.Value(bm.Vars[2]))
	assert.True(t, res.Value(bm.Vars[0]) || res.Value(bm.Vars[1]))
}

func TestEncodeInstance_AltRequiresExactlyOneActiveChild(t *testing.T) {
	inst := altInstance()
	m := solver.NewModel()
	bm := subproblem.EncodeInstance(inst, m)

	res := m.Build().Solve(time.Second, nil)

	require.Equal(t, solver.StatusFeasible, res.Status)
	count := 0
	if res.Value(bm.Vars[0]) {
		count++
	}
	if res.Value(bm.Vars[1]) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestEncodeInstance_RuleClauseIsEnforced(t *testing.T) {
	inst := orInstance()
	// Rule: feature 0 => feature 1 (lowered to CNF: -0 OR 1).
	f0 := &feature.VarF{Name: "0", Negated: true}
	f1 := &feature.VarF{Name: "1"}
	clause, err := feature.NewOr(f0, f1)
	require.NoError(t, err)
	inst.Rules = []feature.Formula{clause}

	m := solver.NewModel()
	bm := subproblem.EncodeInstance(inst, m)
	m.AddClause(solver.Pos(bm.Vars[0])) // force feature 0 active

	res := m.Build().Solve(time.Second, nil)

	require.Equal(t, solver.StatusFeasible, res.Status)
	assert.True(t, res.Value(bm.Vars[1]))
}
