// Package preprocess implements the preprocessor (component C2 of
// samplns-go): it contracts labels that must always be assigned equally
// (or inversely), lowers the remaining rules to conjunctive normal
// form, and rewrites every surviving label to a dense stringified
// integer so the rest of the engine can operate on indices instead of
// names. It also produces the UniverseMapping needed to translate a
// solution found in the indexed universe back to the caller's original
// feature labels.
package preprocess
