package costexpr

import (
	"errors"

	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// ErrUnknownEdge indicates a route referenced an (u,v,key) triple that no
// longer exists in the graph (stale route against a mutated graph).
var ErrUnknownEdge = errors.New("costexpr: route references unknown edge")

// RouteCost returns Σ k·f_e + price over every edge in route, folded.
func RouteCost(g *wardropnet.Graph, route routeenum.Route) (symbolic.Expr, error) {
	terms := make([]symbolic.Expr, 0, len(route)*2)
	for _, ref := range route {
		e, ok := g.EdgeByKey(ref.U, ref.V, ref.Key)
		if !ok {
			return nil, ErrUnknownEdge
		}
		g.ResolveK(e)
		terms = append(terms, symbolic.Scale(e.K, e.Flow), e.Price)
	}
	return symbolic.Add(terms...), nil
}

// RoutePrice returns Σ price over every edge in route, folded.
func RoutePrice(g *wardropnet.Graph, route routeenum.Route) (symbolic.Expr, error) {
	terms := make([]symbolic.Expr, 0, len(route))
	for _, ref := range route {
		e, ok := g.EdgeByKey(ref.U, ref.V, ref.Key)
		if !ok {
			return nil, ErrUnknownEdge
		}
		terms = append(terms, e.Price)
	}
	return symbolic.Add(terms...), nil
}
