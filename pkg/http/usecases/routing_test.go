package usecases

import (
	"context"
	"testing"

	"github.com/aryaseta/costroute/pkg/costmodel"
	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
	"github.com/aryaseta/costroute/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot(t *testing.T) *datastructure.Graph {
	t.Helper()

	nodes := []datastructure.Node{
		datastructure.NewNode("A", ""),
		datastructure.NewNode("B", ""),
	}
	ab, err := datastructure.NewEdge("A", "B", 5, 1, 70, 40)
	require.NoError(t, err)

	g, err := datastructure.NewGraph(nodes, []datastructure.Edge{ab})
	require.NoError(t, err)
	return g
}

func newService(t *testing.T, snapshot *datastructure.Graph) *RoutingService {
	t.Helper()
	engine := routing.NewRouteEngine(costmodel.NewConstructionCostFunction())
	return NewRoutingService(zap.NewNop(), engine, snapshot)
}

func TestMinCostPathUsesDefaultSnapshot(t *testing.T) {
	rs := newService(t, testSnapshot(t))

	result, err := rs.MinCostPath(context.Background(), QuerySpec{
		EndpointSpec: EndpointSpec{Source: "A", Destination: "B"},
	})
	require.NoError(t, err)
	require.True(t, result.Found())
	require.InDelta(t, 550.0, result.GetCost(), 1e-9)
}

func TestMinCostPathInlineGraphOverridesSnapshot(t *testing.T) {
	rs := newService(t, testSnapshot(t))

	result, err := rs.MinCostPath(context.Background(), QuerySpec{
		Nodes: []NodeSpec{{Id: "X"}, {Id: "Y"}},
		Edges: []EdgeSpec{{From: "X", To: "Y", Distance: 2, Terrain: 1, MaterialRate: 10, LaborRate: 5}},
		EndpointSpec: EndpointSpec{Source: "X", Destination: "Y"},
	})
	require.NoError(t, err)
	require.True(t, result.Found())
	require.InDelta(t, 30.0, result.GetCost(), 1e-9)

	// snapshot nodes are invisible to an inline-graph query
	result, err = rs.MinCostPath(context.Background(), QuerySpec{
		Nodes:        []NodeSpec{{Id: "X"}, {Id: "Y"}},
		Edges:        []EdgeSpec{{From: "X", To: "Y", Distance: 2, Terrain: 1, MaterialRate: 10, LaborRate: 5}},
		EndpointSpec: EndpointSpec{Source: "A", Destination: "B"},
	})
	require.NoError(t, err)
	require.True(t, result.Unreachable())
}

func TestMinCostPathInvalidInlineEdge(t *testing.T) {
	rs := newService(t, testSnapshot(t))

	_, err := rs.MinCostPath(context.Background(), QuerySpec{
		Nodes:        []NodeSpec{{Id: "X"}, {Id: "Y"}},
		Edges:        []EdgeSpec{{From: "X", To: "Y", Distance: -1, Terrain: 1}},
		EndpointSpec: EndpointSpec{Source: "X", Destination: "Y"},
	})
	require.Error(t, err)
	require.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
}

func TestMinCostPathMalformedReference(t *testing.T) {
	rs := newService(t, testSnapshot(t))

	_, err := rs.MinCostPath(context.Background(), QuerySpec{
		Nodes:        []NodeSpec{{Id: "X"}},
		Edges:        []EdgeSpec{{From: "X", To: "GHOST", Distance: 1, Terrain: 1}},
		EndpointSpec: EndpointSpec{Source: "X", Destination: "GHOST"},
	})
	require.Error(t, err)
	require.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
}

func TestMinCostPathNoSnapshotNoInlineGraph(t *testing.T) {
	rs := newService(t, nil)

	_, err := rs.MinCostPath(context.Background(), QuerySpec{
		EndpointSpec: EndpointSpec{Source: "A", Destination: "B"},
	})
	require.Error(t, err)
	require.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
}

func TestBatchMinCostPath(t *testing.T) {
	rs := newService(t, testSnapshot(t))

	maxCost := 100.0
	results, err := rs.BatchMinCostPath(context.Background(), BatchSpec{
		Queries: []EndpointSpec{
			{Source: "A", Destination: "B"},
			{Source: "A", Destination: "B", MaxCost: &maxCost},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.True(t, results[0].Found())
	require.True(t, results[1].Unreachable())
}

func TestFilterConstructionFromSpec(t *testing.T) {
	ceiling := 2
	maxCost := 600.0

	filter := buildFilter(&ceiling, &maxCost)
	gotCeiling, terrainOn := filter.TerrainCeiling()
	require.True(t, terrainOn)
	require.Equal(t, 2, gotCeiling)

	gotMax, maxOn := filter.MaxEdgeCost()
	require.True(t, maxOn)
	require.InDelta(t, 600.0, gotMax, 1e-9)

	filter = buildFilter(nil, nil)
	_, terrainOn = filter.TerrainCeiling()
	_, maxOn = filter.MaxEdgeCost()
	require.False(t, terrainOn)
	require.False(t, maxOn)
}
