// Package solver wraps a gini SAT instance behind the CP-SAT-style
// black-box contract the subproblem model needs: Boolean variables,
// clauses, linear <= constraints over those variables, best-effort
// assumption hints, an objective to minimize, and a wall-clock time
// limit, returning a status in {optimal, feasible, infeasible,
// unknown} plus a best bound when no full model was found in time.
//
// A Model accumulates variables and constraints; Build compiles it
// once into a Solver, mirroring the two-phase
// build-the-circuit/then-solve-it shape of the OLM dependency
// resolver's litMapping + solver split. Cardinality (the linear <=
// constraints, and the minimized objective) is coded with gini's
// sorting-network CardSort, the same mechanism that package uses for
// its own "prefer fewer extras" optimization pass.
package solver
