// Package verify implements the sample verifier (C9): a correctness
// gate that checks two samples cover exactly the same pairwise
// interactions over an instance's concrete features, used at the end
// of optimization to confirm a rewritten or minimized sample did not
// silently drop coverage.
package verify
