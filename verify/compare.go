package verify

import (
	"fmt"

	"github.com/tubs-alg/samplns-go/coverage"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// interactions projects a sample onto the canonical set of pairwise
// interactions it realizes: every (feature i, value, feature j, value)
// combination that occurs together within some configuration, in
// coverage.Tuple's canonical i<j order.
func interactions(nConcrete int, sample [][]bool) (map[coverage.Tuple]struct{}, error) {
	set := make(map[coverage.Tuple]struct{})
	for _, conf := range sample {
		if len(conf) != nConcrete {
			return nil, fmt.Errorf("verify: configuration has %d features, want %d: %w",
				len(conf), nConcrete, samplnserr.ErrMalformedInput)
		}
		for i := 0; i < nConcrete; i++ {
			for j := i + 1; j < nConcrete; j++ {
				set[coverage.Tuple{I: i, J: j, Pi: conf[i], Pj: conf[j]}] = struct{}{}
			}
		}
	}

	return set, nil
}

// HaveEqualCoverage reports whether sampleA and sampleB, both
// projected onto inst's concrete features, realize exactly the same
// set of pairwise interactions. It is the correctness gate run at the
// end of optimization: a minimized or rewritten sample must cover
// precisely what the sample it replaces covered, no more and no less.
func HaveEqualCoverage(inst *preprocess.IndexedInstance, sampleA, sampleB [][]bool) (bool, error) {
	a, err := interactions(inst.NConcrete, sampleA)
	if err != nil {
		return false, err
	}
	b, err := interactions(inst.NConcrete, sampleB)
	if err != nil {
		return false, err
	}
	if len(a) != len(b) {
		return false, nil
	}
	for t := range a {
		if _, ok := b[t]; !ok {
			return false, nil
		}
	}

	return true, nil
}
