package preprocess

import "github.com/tubs-alg/samplns-go/feature"

// UniverseMapping records, for one preprocessing stage, which original
// labels were folded into which substitute label and with what
// polarity, so a solution found in the substituted universe can be
// translated back. Stages chain: each stage wraps the previous stage's
// mapping so translation recurses all the way back to the caller's
// original labels.
type UniverseMapping struct {
	origins map[feature.Label]*originEntry
	targets map[feature.Label]targetEntry
	chain   *UniverseMapping
}

type originEntry struct {
	direct  []feature.Label
	inverse []feature.Label
}

type targetEntry struct {
	inverse bool
	target  feature.Label
}

// NewUniverseMapping starts a fresh mapping stage, optionally chained
// after a previous stage's mapping. chain may be nil for the first
// stage.
func NewUniverseMapping(chain *UniverseMapping) *UniverseMapping {
	return &UniverseMapping{
		origins: make(map[feature.Label]*originEntry),
		targets: make(map[feature.Label]targetEntry),
		chain:   chain,
	}
}

// Map records that origin was folded into target, with the given
// polarity. Every origin label may be mapped at most once per stage.
func (m *UniverseMapping) Map(origin, target feature.Label, inverse bool) {
	e, ok := m.origins[target]
	if !ok {
		e = &originEntry{}
		m.origins[target] = e
	}
	if inverse {
		e.inverse = append(e.inverse, origin)
	} else {
		e.direct = append(e.direct, origin)
	}
	m.targets[origin] = targetEntry{inverse: inverse, target: target}
}

// ToMappedUniverse translates an assignment over the original universe
// into this stage's substituted universe, merging in values produced by
// the chain of earlier stages. Variables absent from the target model
// (e.g. features the caller never mentioned) are simply omitted.
func (m *UniverseMapping) ToMappedUniverse(assignment feature.Assignment) feature.Assignment {
	merged := make(feature.Assignment, len(assignment))
	for k, v := range assignment {
		merged[k] = v
	}
	if m.chain != nil {
		for k, v := range m.chain.ToMappedUniverse(assignment) {
			merged[k] = v
		}
	}

	out := make(feature.Assignment)
	for origin, val := range merged {
		te, ok := m.targets[origin]
		if !ok {
			continue
		}
		if te.inverse {
			out[te.target] = !val
		} else {
			out[te.target] = val
		}
	}

	return out
}

// ToOriginalUniverse translates an assignment over this stage's
// substituted universe back to the original universe, recursing through
// the chain of earlier stages. Variables a stage never folded, such as
// auxiliary variables introduced by CNF lowering, are passed through
// under their own labels rather than dropped.
func (m *UniverseMapping) ToOriginalUniverse(assignment feature.Assignment) feature.Assignment {
	out := make(feature.Assignment)
	for v, val := range assignment {
		e, ok := m.origins[v]
		if !ok {
			// v was never folded at this stage; pass it through
			// unchanged so an earlier stage (or the caller) still
			// sees it under its original name.
			out[v] = val

			continue
		}
		for _, o := range e.direct {
			out[o] = val
		}
		for _, o := range e.inverse {
			out[o] = !val
		}
	}
	if m.chain != nil {
		out = m.chain.ToOriginalUniverse(out)
	}

	return out
}
