package preprocess

import "github.com/tubs-alg/samplns-go/feature"

// toCNF lowers every rule to conjunctive normal form via Tseitin
// transformation and flattens any resulting top-level conjunction into
// separate clauses.
func toCNF(rules []feature.Formula) []feature.Formula {
	aux := &feature.AuxAllocator{}
	out := make([]feature.Formula, 0, len(rules))
	for _, r := range rules {
		lowered := r.ToCNF(aux)
		if and, ok := lowered.(*feature.AndF); ok {
			out = append(out, and.Elements...)
		} else {
			out = append(out, lowered)
		}
	}

	return out
}
