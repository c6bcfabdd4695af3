// Package txgraph implements the transaction graph (component C4): an
// undirected graph over signed-literal vertices (coverage.VertexID),
// whose edges are the pairwise interactions realized by at least one
// configuration of the initial sample. It is appended-to during initial
// construction and read-only thereafter, except for the CDS engine's
// permitted edge pruning once a cross-pair is proven infeasible.
package txgraph
