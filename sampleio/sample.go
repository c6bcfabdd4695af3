package sampleio

import (
	"fmt"

	"github.com/tubs-alg/samplns-go/samplnserr"
)

// Configuration is a sample row keyed by feature name, the interchange
// shape both CSV and JSON decode to before conversion to the dense
// []bool form the solver packages use.
type Configuration map[string]bool

// Configurations converts a name-keyed sample to the dense []bool form
// indexed by position in features, in features' order. Every name in
// features must be present in every configuration; unknown names
// beyond features are ignored, mirroring the original's "extra
// columns are dropped" CSV behavior.
func Configurations(features []string, sample []Configuration) ([][]bool, error) {
	out := make([][]bool, len(sample))
	for i, conf := range sample {
		row := make([]bool, len(features))
		for j, name := range features {
			v, ok := conf[name]
			if !ok {
				return nil, fmt.Errorf("sampleio: configuration %d is missing feature %q: %w", i, name, samplnserr.ErrMalformedInput)
			}
			row[j] = v
		}
		out[i] = row
	}

	return out, nil
}

// FromConfigurations converts the dense []bool sample back to the
// name-keyed interchange form.
func FromConfigurations(features []string, sample [][]bool) []Configuration {
	out := make([]Configuration, len(sample))
	for i, conf := range sample {
		row := make(Configuration, len(features))
		for j, name := range features {
			row[name] = conf[j]
		}
		out[i] = row
	}

	return out
}
