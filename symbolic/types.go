package symbolic

import "fmt"

// Expr is the tagged variant at the core of the symbolic/numeric duality:
// Const(number) | Sym(name) | Sum([]Expr) | Mul(coeff, Expr).
//
// Implementations are immutable values; Fold never mutates in place, it
// returns a (possibly identical) simplified Expr.
type Expr interface {
	fmt.Stringer

	// IsSymbolic reports whether this expression has at least one Sym leaf
	// that Fold could not eliminate.
	IsSymbolic() bool

	// Fold collapses fully-constant subtrees into a single Const and
	// flattens nested Sum nodes (nested Mul nodes are kept as they are).
	// Calling Fold on an already-folded
	// Expr is a no-op (idempotent).
	Fold() Expr

	isExpr()
}

// Const is a concrete, already-resolved numeric value.
type Const float64

func (Const) isExpr()             {}
func (c Const) IsSymbolic() bool  { return false }
func (c Const) Fold() Expr        { return c }
func (c Const) String() string    { return fmt.Sprintf("%g", float64(c)) }
func (c Const) Value() float64    { return float64(c) }

// Sym is a named placeholder the solver resolves to a concrete value.
// Names follow the conventions in symballoc: f_<u>-<v>-<color>,
// p_<u>-<v>-<color>, flow_<i>_<j>, T_<i>.
type Sym string

func (Sym) isExpr()            {}
func (s Sym) IsSymbolic() bool { return true }
func (s Sym) Fold() Expr       { return s }
func (s Sym) String() string   { return string(s) }
func (s Sym) Name() string     { return string(s) }

// Sum is an n-ary addition. An empty Sum folds to Const(0).
type Sum []Expr

func (Sum) isExpr() {}

func (s Sum) IsSymbolic() bool {
	for _, e := range s {
		if e.IsSymbolic() {
			return true
		}
	}
	return false
}

func (s Sum) String() string {
	if len(s) == 0 {
		return "0"
	}
	out := s[0].String()
	for _, e := range s[1:] {
		out += " + " + e.String()
	}
	return out
}

// Fold flattens nested Sums, folds every term, and merges all Const terms
// into a single trailing constant (omitted entirely when zero and at least
// one symbolic term remains).
func (s Sum) Fold() Expr {
	var (
		total float64
		terms []Expr
	)
	var flatten func(e Expr)
	flatten = func(e Expr) {
		switch v := e.Fold().(type) {
		case Const:
			total += float64(v)
		case Sum:
			for _, inner := range v {
				flatten(inner)
			}
		default:
			terms = append(terms, v)
		}
	}
	for _, e := range s {
		flatten(e)
	}
	if len(terms) == 0 {
		return Const(total)
	}
	if total != 0 {
		terms = append(terms, Const(total))
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return Sum(terms)
}

// Mul is a scalar multiplication Coeff * Of. The congestion term k*f_e is
// the canonical use: Coeff is the concrete congestion coefficient k, Of is
// the (possibly symbolic) edge flow f_e.
type Mul struct {
	Coeff float64
	Of    Expr
}

func (Mul) isExpr()             {}
func (m Mul) IsSymbolic() bool  { return m.Of.IsSymbolic() }
func (m Mul) String() string    { return fmt.Sprintf("%g*%s", m.Coeff, m.Of) }

// Fold resolves Coeff*Const into a single Const and otherwise folds Of.
func (m Mul) Fold() Expr {
	of := m.Of.Fold()
	if c, ok := of.(Const); ok {
		return Const(m.Coeff * float64(c))
	}
	return Mul{Coeff: m.Coeff, Of: of}
}

// Add builds a folded Sum from the given terms; Add() returns Const(0).
func Add(terms ...Expr) Expr {
	return Sum(terms).Fold()
}

// Scale builds a folded Mul of coeff*e.
func Scale(coeff float64, e Expr) Expr {
	return Mul{Coeff: coeff, Of: e}.Fold()
}
