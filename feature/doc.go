// Package feature implements the in-memory feature-model tree and the
// cross-tree Boolean rule formula (component C1 of samplns-go): the
// tagged-variant node types, Tseitin CNF lowering, and feasibility
// evaluation that every other package builds on.
//
// Labels at this layer are plain strings — the raw, as-parsed universe.
// The preprocess package later substitutes equivalence classes and
// remaps every label to a dense integer, producing the
// preprocess.IndexedInstance that the rest of the engine operates on.
package feature
