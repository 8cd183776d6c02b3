package symbolic

import (
	"errors"
	"sort"
	"sync"
)

// ErrUnknownSymbol indicates a lookup for a Sym never registered via Env.Declare.
var ErrUnknownSymbol = errors.New("symbolic: unknown symbol")

// ErrAlreadyDeclared indicates a duplicate Declare for the same name.
var ErrAlreadyDeclared = errors.New("symbolic: symbol already declared")

// Var is a real-valued symbolic variable: a name, optional bounds the
// constraint builder may tighten, and the value the solver assigns once the
// system is satisfied.
type Var struct {
	Name     string
	Lower    float64 // default 0 (flows/prices/capacities never go negative)
	HasUpper bool
	Upper    float64
}

// Env is the symbolic environment of spec.md §3: a mapping from symbolic
// names to SMT real-valued variables, addressable across strategy
// iterations. Env is guarded by a mutex because a strategy may clone a
// graph and its Env for a trial evaluation while the canonical instance is
// still being read elsewhere (spec.md §5).
type Env struct {
	mu   sync.RWMutex
	vars map[string]*Var
}

// NewEnv returns an empty symbolic environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]*Var)}
}

// Declare registers name as a fresh real variable with the given lower
// bound, returning Sym(name). Declaring the same name twice is idempotent:
// the existing Var is returned unchanged rather than erroring, since route
// enumeration and allocation may run more than once over the same graph.
func (e *Env) Declare(name string, lower float64) Sym {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.vars[name]; !ok {
		e.vars[name] = &Var{Name: name, Lower: lower}
	}
	return Sym(name)
}

// Bound tightens the upper bound of an already-declared variable.
func (e *Env) Bound(name string, upper float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.vars[name]
	if !ok {
		return ErrUnknownSymbol
	}
	v.HasUpper = true
	v.Upper = upper
	return nil
}

// Lookup returns the Var registered under name.
func (e *Env) Lookup(name string) (*Var, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	return v, nil
}

// Names returns every declared symbol name in a stable, sorted order so
// constraint construction (matrix column ordering) is deterministic.
func (e *Env) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.vars))
	for n := range e.vars {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of declared variables.
func (e *Env) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.vars)
}

// Clone returns a deep copy of the environment, letting a strategy probe
// trial values without perturbing the canonical symbol table.
func (e *Env) Clone() *Env {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := NewEnv()
	for n, v := range e.vars {
		cp := *v
		out.vars[n] = &cp
	}
	return out
}

// Eval substitutes every Sym leaf of expr from model (symbol name -> value)
// and folds the result. It returns ok=false if expr references a symbol
// absent from model, leaving the partially-substituted Expr unusable.
func Eval(expr Expr, model map[string]float64) (Expr, bool) {
	switch v := expr.(type) {
	case Const:
		return v, true
	case Sym:
		val, ok := model[string(v)]
		if !ok {
			return nil, false
		}
		return Const(val), true
	case Sum:
		terms := make([]Expr, len(v))
		for i, t := range v {
			sub, ok := Eval(t, model)
			if !ok {
				return nil, false
			}
			terms[i] = sub
		}
		return Sum(terms).Fold(), true
	case Mul:
		sub, ok := Eval(v.Of, model)
		if !ok {
			return nil, false
		}
		return Mul{Coeff: v.Coeff, Of: sub}.Fold(), true
	default:
		return nil, false
	}
}
