package constraint

import (
	"math"

	"go.uber.org/zap"

	"github.com/flowmesh/wardrop/symbolic"
)

// maxBranchNodes bounds the branch-and-bound search over Wardrop route
// gates (spec.md §4.4 C4/C5): a demand's route count is capped at
// routeenum.DefaultMaxRoutesPerDemand, so real sessions stay far under this,
// and it exists as a backstop rather than a tuning knob.
const maxBranchNodes = 4096

// Context is the scoped assertion engine of spec.md §5: a symbol table plus
// a push/pop stack of plain linear atoms and Wardrop route gates, decided by
// branch-and-bound over the gates with a Big-M simplex at every leaf.
type Context struct {
	env        *symbolic.Env
	frames     [][]Atom
	gateFrames [][]RouteGate
	log        *zap.Logger
}

// Option configures a Context at construction.
type Option func(*Context)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext returns an empty Context with one open frame.
func NewContext(env *symbolic.Env, opts ...Option) *Context {
	c := &Context{env: env, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.Push()
	return c
}

// Push opens a new assertion frame.
func (c *Context) Push() {
	c.frames = append(c.frames, nil)
	c.gateFrames = append(c.gateFrames, nil)
}

// Pop discards the most recently opened frame and everything asserted into it.
func (c *Context) Pop() error {
	if len(c.frames) == 0 {
		return ErrEmptyStack
	}
	c.frames = c.frames[:len(c.frames)-1]
	c.gateFrames = c.gateFrames[:len(c.gateFrames)-1]
	return nil
}

// Assert adds plain linear atoms to the current frame.
func (c *Context) Assert(atoms ...Atom) {
	if len(c.frames) == 0 {
		c.Push()
	}
	last := len(c.frames) - 1
	c.frames[last] = append(c.frames[last], atoms...)
}

// AssertGate adds Wardrop route gates to the current frame.
func (c *Context) AssertGate(gates ...RouteGate) {
	if len(c.gateFrames) == 0 {
		c.Push()
	}
	last := len(c.gateFrames) - 1
	c.gateFrames[last] = append(c.gateFrames[last], gates...)
}

func (c *Context) flatten() ([]Atom, []RouteGate) {
	var atoms []Atom
	var gates []RouteGate
	for _, f := range c.frames {
		atoms = append(atoms, f...)
	}
	for _, f := range c.gateFrames {
		gates = append(gates, f...)
	}
	return atoms, gates
}

// Check decides feasibility of every atom and gate currently asserted,
// returning the first satisfying model found.
func (c *Context) Check() (map[string]float64, bool) {
	atoms, gates := c.flatten()
	return c.solve(atoms, gates, nil)
}

// CheckMinimize decides feasibility and, among satisfying assignments,
// returns the one minimizing objective.
func (c *Context) CheckMinimize(objective LinExpr) (map[string]float64, bool) {
	atoms, gates := c.flatten()
	return c.solve(atoms, gates, &objective)
}

func (c *Context) lowerBounds(names []string) map[string]float64 {
	out := make(map[string]float64, len(names))
	for _, n := range names {
		if v, err := c.env.Lookup(n); err == nil {
			out[n] = v.Lower
		}
	}
	return out
}

// solve runs the branch-and-bound search over gates, grounded on the
// teacher's depth-first bounding-and-backtracking idiom: branch order is
// fixed (used before unused) for determinism, each leaf is one LP solve, and
// a feasibility-only search (objective == nil) stops at the first SAT leaf
// rather than exploring the remaining tree.
func (c *Context) solve(atoms []Atom, gates []RouteGate, objective *LinExpr) (map[string]float64, bool) {
	names := c.env.Names()
	lower := c.lowerBounds(names)

	if len(gates) == 0 {
		return solveLP(names, lower, atoms, objective)
	}

	var (
		best    map[string]float64
		bestVal = math.Inf(1)
		found   bool
		visited int
		capped  bool
	)

	var rec func(idx int, extra []Atom)
	rec = func(idx int, extra []Atom) {
		if found && objective == nil {
			return
		}
		if visited >= maxBranchNodes {
			if !capped {
				capped = true
				c.log.Warn("constraint: branch-and-bound node cap reached", zap.Int("cap", maxBranchNodes))
			}
			return
		}
		if idx == len(gates) {
			visited++
			combined := make([]Atom, 0, len(atoms)+len(extra))
			combined = append(combined, atoms...)
			combined = append(combined, extra...)
			model, ok := solveLP(names, lower, combined, objective)
			if !ok {
				return
			}
			if objective == nil {
				found, best = true, model
				return
			}
			if val := evalLinear(*objective, model); !found || val < bestVal {
				found, bestVal, best = true, val, model
			}
			return
		}

		gate := gates[idx]
		rec(idx+1, appendCopy(extra, gate.usedAtoms()...))
		rec(idx+1, appendCopy(extra, gate.unusedAtoms()...))
	}
	rec(0, nil)
	return best, found
}

func appendCopy(base []Atom, add ...Atom) []Atom {
	out := make([]Atom, len(base)+len(add))
	copy(out, base)
	copy(out[len(base):], add)
	return out
}

func evalLinear(e LinExpr, model map[string]float64) float64 {
	total := e.Const
	for n, c := range e.Terms {
		total += c * model[n]
	}
	return total
}
