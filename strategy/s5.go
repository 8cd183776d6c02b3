package strategy

import "github.com/flowmesh/wardrop/wardropnet"

// Capacity-inflation parameters of spec.md §4.6.
const (
	capacityDelta       = 50.0
	capacityInflateIter = 10
)

// S5 is the capacity-inflation fallback of spec.md §4.6: grow every edge's
// capacity by capacityDelta and retry S1, stopping at the first SAT.
func S5(in Input) Result {
	for iter := 0; iter < capacityInflateIter; iter++ {
		inflateCapacity(in.Graph, capacityDelta)
		if r := S1(in); r.Solved {
			return r
		}
	}
	return Result{}
}

func inflateCapacity(g *wardropnet.Graph, delta float64) {
	for _, e := range g.Edges() {
		base := e.Capacity
		if !e.HasCapacity {
			base = wardropnet.DefaultCapacity
		}
		e.Capacity, e.HasCapacity = base+delta, true
	}
}
