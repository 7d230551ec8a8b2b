package datastructure

import (
	"testing"

	"github.com/aryaseta/costroute/pkg/util"
	"github.com/stretchr/testify/require"
)

func mustEdge(t *testing.T, from, to string, distance float64, terrain int, material, labor float64) Edge {
	t.Helper()
	e, err := NewEdge(from, to, distance, terrain, material, labor)
	require.NoError(t, err)
	return e
}

func TestNewEdgeValidation(t *testing.T) {
	testCases := []struct {
		name     string
		distance float64
		terrain  int
		material float64
		labor    float64
		wantErr  bool
	}{
		{name: "valid", distance: 5, terrain: 1, material: 70, labor: 40, wantErr: false},
		{name: "zero distance", distance: 0, terrain: 1, material: 70, labor: 40, wantErr: true},
		{name: "negative distance", distance: -3, terrain: 1, material: 70, labor: 40, wantErr: true},
		{name: "terrain below one", distance: 5, terrain: 0, material: 70, labor: 40, wantErr: true},
		{name: "negative material rate", distance: 5, terrain: 1, material: -1, labor: 40, wantErr: true},
		{name: "negative labor rate", distance: 5, terrain: 1, material: 70, labor: -0.5, wantErr: true},
		{name: "zero rates allowed", distance: 5, terrain: 1, material: 0, labor: 0, wantErr: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEdge("A", "B", tt.distance, tt.terrain, tt.material, tt.labor)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewGraphRejectsUnknownEndpoint(t *testing.T) {
	nodes := []Node{NewNode("A", ""), NewNode("B", "")}
	edges := []Edge{mustEdge(t, "A", "Z", 5, 1, 70, 40)}

	_, err := NewGraph(nodes, edges)
	require.Error(t, err)
	require.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
}

func TestNewGraphRejectsDuplicateNodeId(t *testing.T) {
	nodes := []Node{NewNode("A", ""), NewNode("A", "again")}

	_, err := NewGraph(nodes, nil)
	require.Error(t, err)
}

func TestNewGraphAssignsEdgeIdsInInputOrder(t *testing.T) {
	nodes := []Node{NewNode("A", ""), NewNode("B", ""), NewNode("C", "")}
	edges := []Edge{
		mustEdge(t, "A", "B", 5, 1, 70, 40),
		mustEdge(t, "B", "C", 6, 1, 80, 45),
	}

	g, err := NewGraph(nodes, edges)
	require.NoError(t, err)

	got := g.Edges()
	require.Len(t, got, 2)
	require.Equal(t, 0, got[0].GetEdgeId())
	require.Equal(t, 1, got[1].GetEdgeId())
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	nodes := []Node{NewNode("F", ""), NewNode("A", ""), NewNode("C", "")}
	g, err := NewGraph(nodes, nil)
	require.NoError(t, err)

	ids := make([]string, 0, 3)
	for _, n := range g.Nodes() {
		ids = append(ids, n.GetId())
	}
	require.Equal(t, []string{"F", "A", "C"}, ids)
}

func TestOtherEndpoint(t *testing.T) {
	e := mustEdge(t, "A", "B", 5, 1, 70, 40)
	require.Equal(t, "B", e.OtherEndpoint("A"))
	require.Equal(t, "A", e.OtherEndpoint("B"))
}
