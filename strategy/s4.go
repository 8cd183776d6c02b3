package strategy

import (
	"math"

	"github.com/flowmesh/wardrop/maxflow"
	"github.com/flowmesh/wardrop/wardropnet"
)

// Capacity binary-search parameters of spec.md §4.6.
const (
	capacitySearchMin  = 500.0
	capacitySearchMax  = 5000.0
	capacitySearchIter = 6
)

// S4 is the binary-search-on-capacity strategy of spec.md §4.6: find the
// smallest uniform capacity for which S1 is SAT. Per the decided reading of
// spec.md §4.6's open question (b), the final iteration's outcome is
// reported verbatim — "last probe outcome", not "best SAT seen" — matching
// the spec's literal wording that S4 "returns the last observed model &
// sat state" (see DESIGN.md for the alternative considered).
func S4(in Input) Result {
	lo, hi := capacitySearchMin, capacitySearchMax
	var last Result

	for iter := 0; iter < capacitySearchIter; iter++ {
		c := math.Floor((lo + hi) / 2)
		setUniformCapacity(in.Graph, c)

		if !maxFlowFeasible(in, c) {
			last = Result{}
			lo = c
			continue
		}

		last = S1(in)
		if last.Solved {
			hi = c
		} else {
			lo = c
		}
	}
	return last
}

func setUniformCapacity(g *wardropnet.Graph, c float64) {
	for _, e := range g.Edges() {
		e.Capacity, e.HasCapacity = c, true
	}
}

// maxFlowFeasible is the cheap necessary-condition prefilter of spec.md §6:
// a super-source/super-sink Dinic max-flow below total demand means this
// trial capacity cannot possibly satisfy conservation, so the expensive
// constraint solve is skipped for that iteration.
func maxFlowFeasible(in Input, c float64) bool {
	edges := make([]maxflow.EdgeCapacity, 0, len(in.Graph.Edges()))
	for _, e := range in.Graph.Edges() {
		edges = append(edges, maxflow.EdgeCapacity{U: e.From, V: e.To, Capacity: c})
	}
	demands := make([]maxflow.DemandVolume, 0, len(in.Demands))
	for _, d := range in.Demands {
		if in.Graph.HasVertex(d.S) && in.Graph.HasVertex(d.T) {
			demands = append(demands, maxflow.DemandVolume{S: d.S, T: d.T, D: d.D})
		}
	}
	if len(demands) == 0 {
		return true
	}

	cap, total := maxflow.BuildDemandCapMap(edges, demands)
	return maxflow.MaxFlow(cap) >= total-1e-6
}
