// Package constraint is the SMT-context analog of spec.md §4.4/§5: it
// accumulates linear-arithmetic assertions over scoped push/pop frames and
// decides feasibility (optionally minimizing an objective).
//
// There is no off-the-shelf SMT solver wired here: the corpus carries no
// real-arithmetic decision procedure, so the continuous relaxation is
// solved with a Big-M simplex built on gonum's dense matrices
// (gonum.org/v1/gonum/mat), and the Wardrop equilibrium's flow_ij >=
// TOL_FLOW ⇒ ... implications (spec.md §4.4 C4/C5) are resolved by a
// branch-and-bound search over each route's used/unused case split,
// grounded on the teacher's tsp/bb.go bounding-and-backtracking idiom:
// each leaf of the search tree is a concrete combination of route-usage
// decisions, checked for continuous feasibility by one simplex solve.
//
// Context.Push/Pop implement the scoped assertion frames of spec.md §5:
// every Push must be matched by a Pop on every exit path, including
// UNSAT-break and early-return paths, so a caller can reuse one Context
// across multiple strategy invocations without leaking assertions.
package constraint
