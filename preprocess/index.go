package preprocess

import (
	"strconv"

	"github.com/tubs-alg/samplns-go/feature"
)

// IndexedInstance is a feature model whose every label has been
// rewritten to a dense, stringified integer: concrete features occupy
// [0, NConcrete), every other label referenced by a rule or the tree
// occupies [NConcrete, NAll). Downstream packages that need integer
// arithmetic (coverage bitsets, the SAT solver's variable ids) convert
// at the boundary with VarIndex rather than carrying a second label
// type through the model.
type IndexedInstance struct {
	Name       string
	Structure  *feature.Tree
	Rules      []feature.Formula
	NConcrete  int
	NAll       int
	ToOriginal *UniverseMapping
}

// ToIndexedConfiguration translates original, a configuration keyed by
// the raw model's original feature labels, into this instance's dense
// indexed representation: a []bool of width NConcrete, index i holding
// the value of concrete feature i. Labels original does not mention
// (or that no preprocessing stage ever substituted) contribute
// nothing, per UniverseMapping.ToMappedUniverse.
func (inst *IndexedInstance) ToIndexedConfiguration(original feature.Assignment) []bool {
	mapped := inst.ToOriginal.ToMappedUniverse(original)
	row := make([]bool, inst.NConcrete)
	for i := 0; i < inst.NConcrete; i++ {
		row[i] = mapped[strconv.Itoa(i)]
	}

	return row
}

// ToOriginalConfiguration translates row, a dense indexed configuration
// of width NConcrete, back to an assignment keyed by the raw model's
// original feature labels, recursing through every preprocessing stage
// ToIndexedConfiguration's mapping chained.
func (inst *IndexedInstance) ToOriginalConfiguration(row []bool) feature.Assignment {
	indexed := make(feature.Assignment, len(row))
	for i, v := range row {
		indexed[strconv.Itoa(i)] = v
	}

	return inst.ToOriginal.ToOriginalUniverse(indexed)
}

// VarIndex parses an indexed label back into its dense integer id. It
// panics if l was not produced by the indexing pass, since that would
// indicate a caller mixing labels from two different universes.
func VarIndex(l feature.Label) int {
	i, err := strconv.Atoi(l)
	if err != nil {
		panic("preprocess: label " + l + " is not a dense indexed variable")
	}

	return i
}

// indexLabels rewrites inst to dense stringified-integer labels,
// assigning concrete features the first NConcrete indices, and chains
// the resulting mapping after prior.
func indexLabels(inst *Instance, prior *UniverseMapping) *IndexedInstance {
	mapping := NewUniverseMapping(prior)
	direct := make(map[feature.Label]feature.Label)
	counter := 0

	assign := func(label feature.Label) feature.Label {
		if idx, ok := direct[label]; ok {
			return idx
		}
		idx := feature.Label(strconv.Itoa(counter))
		direct[label] = idx
		mapping.Map(label, idx, false)
		counter++

		return idx
	}

	for _, f := range inst.Features {
		assign(f)
	}
	nConcrete := counter

	rules := make([]feature.Formula, len(inst.Rules))
	for i, r := range inst.Rules {
		for _, v := range r.AllVariables() {
			assign(v)
		}
		rules[i] = r.Substitute(direct, nil)
	}

	var structure *feature.Tree
	if inst.Structure != nil {
		for _, f := range inst.Structure.AllFeatures() {
			assign(f)
		}
		structure = inst.Structure.Substitute(direct, nil)
	}

	return &IndexedInstance{
		Name:       inst.Name,
		Structure:  structure,
		Rules:      rules,
		NConcrete:  nConcrete,
		NAll:       counter,
		ToOriginal: mapping,
	}
}
