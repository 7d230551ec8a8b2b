package routing

import (
	"context"

	"github.com/aryaseta/costroute/pkg/costmodel"
	"github.com/aryaseta/costroute/pkg/datastructure"
)

// RouteEngine computes constrained minimum-cost paths over immutable
// graph snapshots. The engine holds only the cost function: no graph
// state persists between calls, so it is re-entrant and safe for
// concurrent queries against the same snapshot.
type RouteEngine struct {
	costFunction costmodel.CostFunction
}

func NewRouteEngine(costFunction costmodel.CostFunction) *RouteEngine {
	return &RouteEngine{costFunction: costFunction}
}

// EdgeCost exposes the engine's derived edge weight. Recomputed on
// every call; never cached against stale attributes.
func (re *RouteEngine) EdgeCost(e datastructure.Edge) float64 {
	return re.costFunction.GetWeight(e)
}

// arc is one direction of an admissible undirected edge in the
// transient adjacency index of a single query.
type arc struct {
	head   string
	weight float64
	edge   datastructure.Edge
}

// buildAdjacency indexes the snapshot's edges admitted by the filter.
// Built fresh per call: filters stay a pure function of the query
// instead of mutable graph state. Self-loops are skipped — they can
// never improve a shortest path. Parallel edges are all kept; the
// cheaper one wins through relaxation.
func (re *RouteEngine) buildAdjacency(g *datastructure.Graph, filter Filter) map[string][]arc {
	adjacency := make(map[string][]arc, g.NumberOfVertices())
	for _, e := range g.Edges() {
		if e.IsSelfLoop() {
			continue
		}
		w := re.costFunction.GetWeight(e)
		if !filter.Admits(e, w) {
			continue
		}
		adjacency[e.GetFrom()] = append(adjacency[e.GetFrom()], arc{head: e.GetTo(), weight: w, edge: e})
		adjacency[e.GetTo()] = append(adjacency[e.GetTo()], arc{head: e.GetFrom(), weight: w, edge: e})
	}
	return adjacency
}

// FindMinCostPath computes the minimum-total-cost simple path from
// source to destination over the edges admitted by filter.
//
// An unset ("") source or destination yields a no-query result, and a
// source or destination absent from the snapshot yields unreachable;
// neither is an error. source == destination yields a found result
// with zero edges and zero cost. ctx is checked between node
// settlements, so long queries honor cancellation and deadlines.
func (re *RouteEngine) FindMinCostPath(ctx context.Context, g *datastructure.Graph,
	source, destination string, filter Filter) (RouteResult, error) {

	if source == "" || destination == "" {
		return NewNoQueryResult(), nil
	}
	if !g.HasNode(source) || !g.HasNode(destination) {
		return NewUnreachableResult(), nil
	}
	if source == destination {
		return NewRouteResult([]datastructure.Edge{}, 0), nil
	}

	adjacency := re.buildAdjacency(g, filter)

	search := newDijkstra(adjacency)
	found, err := search.run(ctx, source, destination)
	if err != nil {
		return RouteResult{}, err
	}
	if !found {
		return NewUnreachableResult(), nil
	}

	path := search.reconstructPath(source, destination)
	return NewRouteResult(path, search.dist[destination]), nil
}
