package preprocess

import (
	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/samplnslog"
)

// Preprocessor simplifies a raw Instance into an IndexedInstance ready
// for coverage indexing and the transaction graph, and remembers how to
// map configurations back to the original universe.
//
// Steps:
//  1. Equivalence contraction: fold labels forced equal (or
//     inverse-equal) by EQ rules and by mandatory children of And
//     nodes in the tree into a single canonical substitute label.
//  2. CNF lowering (optional, on by default): rewrite every remaining
//     rule into conjunctive-normal-form clauses via Tseitin.
//  3. Dense indexing: rewrite every surviving label to a stringified
//     dense integer, concrete features first.
type Preprocessor struct {
	CNF    bool
	logger *samplnslog.Logger
}

// NewPreprocessor returns a Preprocessor with CNF lowering enabled and
// the default package logger.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{CNF: true, logger: samplnslog.Default()}
}

// WithLogger overrides the logger used to report preprocessing progress.
func (p *Preprocessor) WithLogger(l *samplnslog.Logger) *Preprocessor {
	p.logger = l

	return p
}

// Preprocess runs the full pipeline. It returns an error wrapping
// samplnserr.ErrInconsistentModel if two labels are declared both equal
// and inverse-equal, directly or transitively.
func (p *Preprocessor) Preprocess(inst *Instance) (*IndexedInstance, error) {
	p.logger.Infof("preprocessing instance %s", inst.Name)

	eq := newEquivalenceClasses()
	rules := make([]feature.Formula, 0, len(inst.Rules))
	for _, r := range inst.Rules {
		if e, ok := r.(*feature.EqF); ok && e.IsVariableEquivalence() {
			a := e.A.(*feature.VarF)
			b := e.B.(*feature.VarF)
			if err := eq.markEquivalent(a.Name, b.Name, a.Negated != b.Negated); err != nil {
				return nil, err
			}

			continue
		}
		rules = append(rules, r)
	}
	if inst.Structure != nil {
		if err := collectMandatoryEquivalences(inst.Structure, eq); err != nil {
			return nil, err
		}
	}

	direct, inverse := eq.substitutions()
	eqInstance := (&Instance{
		Name:      inst.Name,
		Features:  inst.Features,
		Structure: inst.Structure,
		Rules:     rules,
	}).substitute(direct, inverse)
	eqInstance.Name += "|EQ"

	eqMapping := NewUniverseMapping(nil)
	for origin, target := range direct {
		eqMapping.Map(origin, target, false)
	}
	for origin, target := range inverse {
		eqMapping.Map(origin, target, true)
	}

	if p.CNF {
		eqInstance.Rules = toCNF(eqInstance.Rules)
		eqInstance.Name += "|CNF"
	}

	out := indexLabels(eqInstance, eqMapping)
	p.logger.Infof("finished preprocessing %s (%d concrete, %d total variables)", out.Name, out.NConcrete, out.NAll)

	return out, nil
}
