package usecases

import (
	"context"

	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
	"github.com/aryaseta/costroute/pkg/util"
	"go.uber.org/zap"
)

type NodeSpec struct {
	Id   string
	Name string
}

type EdgeSpec struct {
	From         string
	To           string
	Distance     float64
	Terrain      int
	MaterialRate float64
	LaborRate    float64
}

type EndpointSpec struct {
	Source         string
	Destination    string
	TerrainCeiling *int
	MaxCost        *float64
}

// QuerySpec is one minimum-cost-path request. When Nodes and Edges are
// empty, the query runs against the service's default snapshot.
type QuerySpec struct {
	Nodes []NodeSpec
	Edges []EdgeSpec
	EndpointSpec
}

// BatchSpec evaluates several endpoint pairs over one graph snapshot.
type BatchSpec struct {
	Nodes   []NodeSpec
	Edges   []EdgeSpec
	Queries []EndpointSpec
}

// RoutingService maps transport-level route requests onto the
// stateless engine. It holds the immutable default network snapshot;
// callers supplying an inline graph get a fresh snapshot per request,
// validated before any search runs.
type RoutingService struct {
	log      *zap.Logger
	engine   RouteEngine
	snapshot *datastructure.Graph
}

func NewRoutingService(log *zap.Logger, engine RouteEngine, snapshot *datastructure.Graph) *RoutingService {
	return &RoutingService{
		log:      log,
		engine:   engine,
		snapshot: snapshot,
	}
}

func (rs *RoutingService) resolveGraph(nodes []NodeSpec, edges []EdgeSpec) (*datastructure.Graph, error) {
	if len(nodes) == 0 && len(edges) == 0 {
		if rs.snapshot == nil {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"no inline graph given and no default network snapshot is loaded")
		}
		return rs.snapshot, nil
	}

	dsNodes := make([]datastructure.Node, 0, len(nodes))
	for _, n := range nodes {
		dsNodes = append(dsNodes, datastructure.NewNode(n.Id, n.Name))
	}

	dsEdges := make([]datastructure.Edge, 0, len(edges))
	for _, e := range edges {
		edge, err := datastructure.NewEdge(e.From, e.To, e.Distance, e.Terrain, e.MaterialRate, e.LaborRate)
		if err != nil {
			return nil, err
		}
		dsEdges = append(dsEdges, edge)
	}

	return datastructure.NewGraph(dsNodes, dsEdges)
}

func buildFilter(terrainCeiling *int, maxCost *float64) routing.Filter {
	filter := routing.NewFilter()
	if terrainCeiling != nil {
		filter = filter.WithTerrainCeiling(*terrainCeiling)
	}
	if maxCost != nil {
		filter = filter.WithMaxEdgeCost(*maxCost)
	}
	return filter
}

func (rs *RoutingService) MinCostPath(ctx context.Context, spec QuerySpec) (routing.RouteResult, error) {
	g, err := rs.resolveGraph(spec.Nodes, spec.Edges)
	if err != nil {
		return routing.RouteResult{}, err
	}

	result, err := rs.engine.FindMinCostPath(ctx, g, spec.Source, spec.Destination,
		buildFilter(spec.TerrainCeiling, spec.MaxCost))
	if err != nil {
		return routing.RouteResult{}, err
	}

	rs.log.Debug("min-cost path query",
		zap.String("source", spec.Source),
		zap.String("destination", spec.Destination),
		zap.String("status", result.GetStatus().String()),
		zap.Float64("cost", result.GetCost()),
	)
	return result, nil
}

func (rs *RoutingService) BatchMinCostPath(ctx context.Context, spec BatchSpec) ([]routing.RouteResult, error) {
	g, err := rs.resolveGraph(spec.Nodes, spec.Edges)
	if err != nil {
		return nil, err
	}

	queries := make([]routing.Query, 0, len(spec.Queries))
	for _, q := range spec.Queries {
		queries = append(queries, routing.Query{
			Source:      q.Source,
			Destination: q.Destination,
			Filter:      buildFilter(q.TerrainCeiling, q.MaxCost),
		})
	}

	results, err := rs.engine.FindMinCostPaths(ctx, g, queries)
	if err != nil {
		return nil, err
	}

	rs.log.Debug("batch min-cost path query",
		zap.Int("queries", len(queries)),
	)
	return results, nil
}

// EdgeCost exposes the engine's derived edge weight for presentation.
func (rs *RoutingService) EdgeCost(e datastructure.Edge) float64 {
	return rs.engine.EdgeCost(e)
}
