// Package costexpr builds the route-cost and route-price expressions of
// spec.md §4.3 from a route's edge sequence:
//
//	route cost  = Σ k·f_e + price, over every edge in the route
//	route price = Σ price, over every edge in the route
//
// Both builders return symbolic.Expr and lean on Expr.Fold to collapse a
// fully-numeric route into a single Const — the descending-price strategy
// (S2) depends on being able to tell a fully-numeric route price apart
// from a symbolic one without touching the constraint solver.
package costexpr
