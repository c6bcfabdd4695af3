// Package coverage implements the coverage index (component C3): for a
// fixed initial sample it computes the immutable set of feasible
// literal-pair tuples and tracks a mutable missing subset as
// configurations are added during neighborhood optimization.
//
// A tuple (i,pᵢ,j,pⱼ) with i<j is represented internally as an edge
// between two signed-literal vertices — the same dense vertex space the
// transaction graph (C4) uses — so the two packages can share
// VertexID/FeatureOf without any translation layer between them.
package coverage
