package constraint

import (
	"fmt"
	"sort"

	"github.com/flowmesh/wardrop/symbolic"
)

// LinExpr is a linear combination Σ coeff_i·x_i + Const over named symbols.
type LinExpr struct {
	Terms map[string]float64
	Const float64
}

// Op is a relational operator between a LinExpr and a numeric RHS.
type Op int

const (
	Le Op = iota
	Ge
	Eq
)

func (op Op) String() string {
	switch op {
	case Le:
		return "<="
	case Ge:
		return ">="
	default:
		return "=="
	}
}

// Atom is one linear-arithmetic assertion: Terms OP RHS, where RHS already
// has the LinExpr's own constant folded in (see NewAtom).
type Atom struct {
	Terms map[string]float64
	Op    Op
	RHS   float64
}

// NewAtom builds Terms OP rhs from expr OP rhs, moving expr's constant term
// to the right-hand side.
func NewAtom(expr LinExpr, op Op, rhs float64) Atom {
	return Atom{Terms: expr.Terms, Op: op, RHS: rhs - expr.Const}
}

func (a Atom) String() string {
	names := make([]string, 0, len(a.Terms))
	for n := range a.Terms {
		names = append(names, n)
	}
	sort.Strings(names)
	s := ""
	for i, n := range names {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%g*%s", a.Terms[n], n)
	}
	return fmt.Sprintf("%s %s %g", s, a.Op, a.RHS)
}

// Linearize flattens a symbolic.Expr into a LinExpr. Every expression this
// module's builders construct (route cost/price, edge-flow sums) is linear
// by spec.md's grammar — k and prices are scalar coefficients, never
// multiplied against another symbolic term — so this never needs to handle
// genuine products of two variables.
func Linearize(e symbolic.Expr) (LinExpr, error) {
	switch v := e.Fold().(type) {
	case symbolic.Const:
		return LinExpr{Const: float64(v)}, nil
	case symbolic.Sym:
		return LinExpr{Terms: map[string]float64{string(v): 1}}, nil
	case symbolic.Sum:
		out := LinExpr{Terms: make(map[string]float64)}
		for _, term := range v {
			sub, err := Linearize(term)
			if err != nil {
				return LinExpr{}, err
			}
			addInto(&out, sub, 1)
		}
		return out, nil
	case symbolic.Mul:
		sub, err := Linearize(v.Of)
		if err != nil {
			return LinExpr{}, err
		}
		out := LinExpr{Terms: make(map[string]float64)}
		addInto(&out, sub, v.Coeff)
		return out, nil
	default:
		return LinExpr{}, ErrNotLinear
	}
}

func addInto(dst *LinExpr, src LinExpr, scale float64) {
	if dst.Terms == nil {
		dst.Terms = make(map[string]float64)
	}
	for n, c := range src.Terms {
		dst.Terms[n] += c * scale
	}
	dst.Const += src.Const * scale
}

// sub returns lhs - rhs as a new LinExpr, used to build "a OP b" atoms from
// two arbitrary linear expressions.
func sub(lhs, rhs LinExpr) LinExpr {
	out := LinExpr{Terms: make(map[string]float64)}
	addInto(&out, lhs, 1)
	addInto(&out, rhs, -1)
	return out
}
