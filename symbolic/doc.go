// Package symbolic defines the tagged-variant expression tree shared by the
// route/cost/constraint builders: a value is either a concrete number, a
// named placeholder the solver will assign, or a composition of the two.
//
// The duality is the hinge of the whole engine: edge prices and flows start
// out as a mix of literals and unknowns, and the builders downstream need to
// tell, cheaply and without touching a solver, whether a given expression is
// already fully determined. Fold collapses any subtree whose leaves are all
// Const into a single Const, so callers can type-switch on the result of
// Fold to pick a native-arithmetic fast path over an SMT assertion.
package symbolic
