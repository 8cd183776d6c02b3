package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/maxflow"
)

func TestMaxFlow_SingleDemandBoundedByEdgeCapacity(t *testing.T) {
	edges := []maxflow.EdgeCapacity{{U: "A", V: "C", Capacity: 50}}
	demands := []maxflow.DemandVolume{{S: "A", T: "C", D: 120}}

	cap, total := maxflow.BuildDemandCapMap(edges, demands)
	require.Equal(t, 120.0, total)
	require.Equal(t, 50.0, maxflow.MaxFlow(cap))
}

func TestMaxFlow_TwoParallelEdgesCoverDemand(t *testing.T) {
	edges := []maxflow.EdgeCapacity{
		{U: "A", V: "C", Capacity: 50},
		{U: "A", V: "C", Capacity: 80},
	}
	demands := []maxflow.DemandVolume{{S: "A", T: "C", D: 120}}

	cap, total := maxflow.BuildDemandCapMap(edges, demands)
	require.Equal(t, 120.0, total)
	require.Equal(t, 120.0, maxflow.MaxFlow(cap))
}
