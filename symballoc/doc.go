// Package symballoc creates the symbolic variables spec.md §4.2 requires
// before any constraint can be written: one flow variable per edge
// (always), one price variable per edge whose price was left unresolved,
// and one flow variable per (demand, route) pair.
//
// Allocation happens exactly once per solve session (spec.md §3
// "Lifecycle"); the returned route-flow matrix and the graph's per-edge
// Flow/Price fields are then shared, unmodified in shape, across every
// strategy invocation for that session.
package symballoc
