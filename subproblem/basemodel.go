// Package subproblem implements the per-neighborhood CSP model (C7):
// up to k configuration slots, each individually feasible, chosen to
// collectively cover a neighborhood's missing tuples at minimum slot
// count.
package subproblem

import (
	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/subproblem/solver"
)

// BaseModel is one replica of an indexed instance's tree and rule
// constraints, freshly added to a solver.Model — the factory both the
// CDS engine's sufficient-refutation test and every C7 slot reuse, so
// "is this a feasible configuration" is encoded exactly once.
type BaseModel struct {
	// Vars holds one solver.Var per dense instance variable index
	// [0, inst.NAll), in order.
	Vars []solver.Var
}

// EncodeInstance adds inst's feature-tree structure and CNF rules to m
// as hard clauses and returns the resulting per-variable handles.
// Calling it twice on the same m replicates the constraints once per
// call — the mechanism the subproblem model uses to give each slot its
// own independent copy of the feasibility constraints.
func EncodeInstance(inst *preprocess.IndexedInstance, m *solver.Model) *BaseModel {
	vars := m.NewVars(inst.NAll)

	if inst.Structure != nil && len(inst.Structure.Nodes) > 0 {
		encodeTreeNode(inst.Structure, inst.Structure.Root, vars, m)
		root := inst.Structure.Nodes[inst.Structure.Root].Literal
		m.AddClause(literalVar(vars, root))
	}

	lookup := make(map[feature.Label]solver.Var, inst.NAll)
	varFor := func(name feature.Label) solver.Var {
		idx := preprocess.VarIndex(name)
		if idx < len(vars) {
			return vars[idx]
		}
		if v, ok := lookup[name]; ok {
			return v
		}
		v := m.NewVar()
		lookup[name] = v

		return v
	}

	aux := &feature.AuxAllocator{}
	for _, rule := range inst.Rules {
		addRuleClauses(rule.ToCNF(aux), m, varFor)
	}

	return &BaseModel{Vars: vars}
}

func literalVar(vars []solver.Var, l feature.Literal) solver.Literal {
	v := vars[preprocess.VarIndex(l.Var)]
	if l.Negated {
		return solver.Neg(v)
	}

	return solver.Pos(v)
}

// encodeTreeNode replicates Tree.feasible's And/Or/Alt semantics as
// hard clauses: mandatory And-children were already unified with
// their parent by the preprocessor's equivalence pass, so only
// optional children need a child=>parent clause here.
func encodeTreeNode(tr *feature.Tree, i int, vars []solver.Var, m *solver.Model) {
	n := tr.Nodes[i]
	children := make([]feature.Literal, len(n.Children))
	for k, ci := range n.Children {
		children[k] = tr.Nodes[ci].Literal
	}

	switch n.Kind {
	case feature.KindConcrete:
		// no structural constraint of its own
	case feature.KindAnd:
		for k, ci := range n.Children {
			if tr.Nodes[ci].Mandatory {
				continue
			}
			m.AddClause(literalVar(vars, children[k].Neg()), literalVar(vars, n.Literal))
		}
	case feature.KindOr:
		addAtLeastOneImpliesParent(vars, m, n.Literal, children)
		addChildImpliesParent(vars, m, n.Literal, children)
	case feature.KindAlt:
		addAtLeastOneImpliesParent(vars, m, n.Literal, children)
		addChildImpliesParent(vars, m, n.Literal, children)
		lits := make([]solver.Literal, len(children))
		for k, c := range children {
			lits[k] = literalVar(vars, c)
		}
		m.AddAtMostOne(lits...)
	}

	for _, ci := range n.Children {
		encodeTreeNode(tr, ci, vars, m)
	}
}

// addAtLeastOneImpliesParent asserts parent => (c1 v ... v cn).
func addAtLeastOneImpliesParent(vars []solver.Var, m *solver.Model, parent feature.Literal, children []feature.Literal) {
	clause := make([]solver.Literal, 0, len(children)+1)
	for _, c := range children {
		clause = append(clause, literalVar(vars, c))
	}
	clause = append(clause, literalVar(vars, parent.Neg()))
	m.AddClause(clause...)
}

// addChildImpliesParent asserts, for every child, child => parent.
func addChildImpliesParent(vars []solver.Var, m *solver.Model, parent feature.Literal, children []feature.Literal) {
	for _, c := range children {
		m.AddClause(literalVar(vars, c.Neg()), literalVar(vars, parent))
	}
}

func addRuleClauses(f feature.Formula, m *solver.Model, varFor func(feature.Label) solver.Var) {
	switch v := f.(type) {
	case *feature.AndF:
		for _, e := range v.Elements {
			addRuleClauses(e, m, varFor)
		}
	case *feature.OrF:
		lits := make([]solver.Literal, len(v.Elements))
		for i, e := range v.Elements {
			lits[i] = cnfLiteral(e, varFor)
		}
		m.AddClause(lits...)
	case *feature.VarF:
		m.AddClause(cnfLiteral(v, varFor))
	default:
		panic("subproblem: rule formula is not in CNF after ToCNF")
	}
}

func cnfLiteral(f feature.Formula, varFor func(feature.Label) solver.Var) solver.Literal {
	vf, ok := f.(*feature.VarF)
	if !ok {
		panic("subproblem: expected a CNF literal")
	}
	v := varFor(vf.Name)
	if vf.Negated {
		return solver.Neg(v)
	}

	return solver.Pos(v)
}
