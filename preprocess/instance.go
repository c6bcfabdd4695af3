package preprocess

import "github.com/tubs-alg/samplns-go/feature"

// Instance is a raw, string-labeled feature model: a feature tree plus
// its cross-tree Boolean rules, exactly as produced by a model parser
// before any preprocessing has been applied.
type Instance struct {
	Name      string
	Features  []feature.Label
	Structure *feature.Tree
	Rules     []feature.Formula
}

// substitute rewrites every label in the instance through direct/inverse
// maps, deduplicating the feature list (distinct labels can collapse to
// the same substitute).
func (inst *Instance) substitute(direct, inverse map[feature.Label]feature.Label) *Instance {
	rules := make([]feature.Formula, len(inst.Rules))
	for i, r := range inst.Rules {
		rules[i] = r.Substitute(direct, inverse)
	}

	var structure *feature.Tree
	if inst.Structure != nil {
		structure = inst.Structure.Substitute(direct, inverse)
	}

	return &Instance{
		Name:      inst.Name,
		Features:  substituteFeatureList(inst.Features, direct, inverse),
		Structure: structure,
		Rules:     rules,
	}
}

func substituteFeatureList(features []feature.Label, direct, inverse map[feature.Label]feature.Label) []feature.Label {
	seen := make(map[feature.Label]bool, len(features))
	out := make([]feature.Label, 0, len(features))
	for _, f := range features {
		sub := f
		if v, ok := direct[f]; ok {
			sub = v
		} else if v, ok := inverse[f]; ok {
			sub = v
		}
		if !seen[sub] {
			seen[sub] = true
			out = append(out, sub)
		}
	}

	return out
}
