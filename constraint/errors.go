package constraint

import "errors"

// ErrNotLinear indicates a symbolic.Expr contains a non-linear combination
// (a Mul whose Of is itself symbolic and non-constant-scaled) that the
// linear-arithmetic context cannot represent. No component in this module
// constructs such an expression, so seeing this error means an upstream
// builder handed the solver something outside spec.md's cost/price grammar.
var ErrNotLinear = errors.New("constraint: expression is not linear")

// ErrEmptyStack indicates Pop was called with no matching Push.
var ErrEmptyStack = errors.New("constraint: pop on empty frame stack")

// ErrUnknownVariable indicates a linear expression referenced a symbol the
// context's Env never declared.
var ErrUnknownVariable = errors.New("constraint: unknown variable")
