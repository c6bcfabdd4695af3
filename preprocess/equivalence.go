package preprocess

import (
	"fmt"

	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/internal/dsu"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// equivalenceClasses accumulates pairwise equal/inverse-equal
// declarations between labels and, once closed, assigns every touched
// label a single canonical substitute name.
type equivalenceClasses struct {
	index  map[feature.Label]int
	labels []feature.Label
	sets   *dsu.ParityDSU
}

func newEquivalenceClasses() *equivalenceClasses {
	return &equivalenceClasses{index: make(map[feature.Label]int), sets: dsu.NewParity(0)}
}

func (e *equivalenceClasses) id(label feature.Label) int {
	if i, ok := e.index[label]; ok {
		return i
	}
	i := len(e.labels)
	e.index[label] = i
	e.labels = append(e.labels, label)
	e.sets.Grow(1)

	return i
}

// markEquivalent declares a and b equal (inverse == false) or
// inverse-equal (inverse == true). A contradiction with an earlier
// declaration is reported wrapping samplnserr.ErrInconsistentModel.
func (e *equivalenceClasses) markEquivalent(a, b feature.Label, inverse bool) error {
	ia, ib := e.id(a), e.id(b)
	if _, err := e.sets.Union(ia, ib, inverse); err != nil {
		return fmt.Errorf("labels %q and %q cannot both be assigned equal and inverse-equal: %w",
			a, b, samplnserr.ErrInconsistentModel)
	}

	return nil
}

// substitutions returns, for every label that participated in at least
// one equivalence declaration, the canonical substitute label it must be
// rewritten to: direct for same-polarity class members, inverse for
// opposite-polarity members. The representative of each class is the
// stable textual minimum among its members, per spec.
func (e *equivalenceClasses) substitutions() (direct, inverse map[feature.Label]feature.Label) {
	members := make(map[int][]feature.Label)
	rootOf := make(map[feature.Label]int)
	invOf := make(map[feature.Label]bool)
	for _, label := range e.labels {
		root, inv := e.sets.Find(e.index[label])
		members[root] = append(members[root], label)
		rootOf[label] = root
		invOf[label] = inv
	}

	names := make(map[int]feature.Label)
	for root, labels := range members {
		name := labels[0]
		for _, l := range labels[1:] {
			if l < name {
				name = l
			}
		}
		names[root] = name
	}

	direct = make(map[feature.Label]feature.Label)
	inverse = make(map[feature.Label]feature.Label)
	for _, label := range e.labels {
		name := names[rootOf[label]]
		if invOf[label] {
			inverse[label] = name
		} else {
			direct[label] = name
		}
	}

	return direct, inverse
}

// collectMandatoryEquivalences walks a feature tree and marks every
// mandatory child of an And node equivalent to its parent, inverse if
// their literals carry different polarity. Mandatory flags on children
// of Or and Alt nodes are not considered.
func collectMandatoryEquivalences(tr *feature.Tree, eq *equivalenceClasses) error {
	if len(tr.Nodes) == 0 {
		return nil
	}

	var walk func(i int) error
	walk = func(i int) error {
		n := tr.Nodes[i]
		if n.Kind == feature.KindAnd {
			for _, c := range n.Children {
				child := tr.Nodes[c]
				if !child.Mandatory {
					continue
				}
				inverse := n.Literal.Negated != child.Literal.Negated
				if err := eq.markEquivalent(n.Literal.Var, child.Literal.Var, inverse); err != nil {
					return err
				}
			}
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(tr.Root)
}
