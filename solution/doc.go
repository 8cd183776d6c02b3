// Package solution implements the Solution Materializer of spec.md §4.7:
// given a satisfying model, it evaluates every flow_i_j to a 5-decimal
// string, writes the resolved f_e and price values back into the graph as
// symbolic.Const, and returns the per-demand flow-value matrix.
//
// Decimal formatting goes through github.com/shopspring/decimal rather
// than strconv.FormatFloat, so rounding follows banker's-free, purely
// decimal semantics instead of floating-point binary rounding quirks —
// the same reasoning wardroplog's corpus sibling (a cost-estimation tool)
// applies to money-shaped output.
package solution
