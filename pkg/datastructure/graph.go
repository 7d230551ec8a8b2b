package datastructure

import (
	"github.com/aryaseta/costroute/pkg/util"
)

// Node is a location in the network. The id is the stable key used by
// edges and queries; name is display-only and ignored by the engine.
type Node struct {
	id   string
	name string
}

func NewNode(id, name string) Node {
	return Node{id: id, name: name}
}

func (n Node) GetId() string {
	return n.id
}

func (n Node) GetName() string {
	return n.name
}

// Edge is an undirected segment between two nodes. Distance is in the
// caller's length unit, terrain is an ordinal difficulty class (1 =
// easiest), and the two rates are cost per unit distance. The edge id
// is assigned by the owning graph snapshot and identifies the edge in
// route results, so parallel edges between the same pair stay
// distinguishable.
type Edge struct {
	id           int
	from         string
	to           string
	distance     float64
	terrain      int
	materialRate float64
	laborRate    float64
}

// NewEdge validates the numeric attributes at construction time so the
// search never has to deal with malformed weights.
func NewEdge(from, to string, distance float64, terrain int, materialRate, laborRate float64) (Edge, error) {
	if distance <= 0 {
		return Edge{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"edge %s-%s: distance must be positive, got %v", from, to, distance)
	}
	if terrain < 1 {
		return Edge{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"edge %s-%s: terrain class must be >= 1, got %d", from, to, terrain)
	}
	if materialRate < 0 || laborRate < 0 {
		return Edge{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"edge %s-%s: cost rates must be non-negative, got material=%v labor=%v",
			from, to, materialRate, laborRate)
	}
	return Edge{
		id:           -1,
		from:         from,
		to:           to,
		distance:     distance,
		terrain:      terrain,
		materialRate: materialRate,
		laborRate:    laborRate,
	}, nil
}

func (e Edge) GetEdgeId() int {
	return e.id
}

func (e Edge) GetFrom() string {
	return e.from
}

func (e Edge) GetTo() string {
	return e.to
}

func (e Edge) GetDistance() float64 {
	return e.distance
}

func (e Edge) GetTerrain() int {
	return e.terrain
}

func (e Edge) GetMaterialRate() float64 {
	return e.materialRate
}

func (e Edge) GetLaborRate() float64 {
	return e.laborRate
}

// IsSelfLoop reports whether both endpoints are the same node. Self
// loops are accepted into a snapshot but never enter an adjacency
// structure.
func (e Edge) IsSelfLoop() bool {
	return e.from == e.to
}

// OtherEndpoint returns the endpoint opposite to nodeId. The edge is
// undirected, so either endpoint may serve as the other's neighbor.
func (e Edge) OtherEndpoint(nodeId string) string {
	if nodeId == e.from {
		return e.to
	}
	return e.from
}

// Graph is an immutable snapshot of nodes and edges. Construction
// validates every edge reference; after NewGraph returns, the snapshot
// is never mutated, so any number of concurrent queries may read it
// without coordination.
type Graph struct {
	nodes     map[string]Node
	nodeOrder []string
	edges     []Edge
}

// NewGraph builds a snapshot from a node set and an edge list. Edges
// referencing a node id absent from nodes are a validation failure,
// surfaced before any search runs. Edge ids are assigned from the
// input ordering, which also fixes the engine's iteration order.
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[string]Node, len(nodes)),
		nodeOrder: make([]string, 0, len(nodes)),
		edges:     make([]Edge, 0, len(edges)),
	}
	for _, n := range nodes {
		if n.id == "" {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "node id must be non-empty")
		}
		if _, dup := g.nodes[n.id]; dup {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "duplicate node id %q", n.id)
		}
		g.nodes[n.id] = n
		g.nodeOrder = append(g.nodeOrder, n.id)
	}
	for i, e := range edges {
		if _, ok := g.nodes[e.from]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"edge %s-%s references unknown node %q", e.from, e.to, e.from)
		}
		if _, ok := g.nodes[e.to]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"edge %s-%s references unknown node %q", e.from, e.to, e.to)
		}
		e.id = i
		g.edges = append(g.edges, e)
	}
	return g, nil
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetNode(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, util.WrapErrorf(nil, util.ErrNotFound, "node %q not in snapshot", id)
	}
	return n, nil
}

// Nodes returns the node set in insertion order. The stable order
// keeps tie-breaks in the search deterministic for a given input.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}
