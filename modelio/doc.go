// Package modelio parses feature-model source files into
// preprocess.Instance values: the XML feature-model format, DIMACS
// CNF, and archives (.tar.gz/.zip) auto-unwrapping to one of the two.
package modelio
