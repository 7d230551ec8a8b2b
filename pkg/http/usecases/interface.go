package usecases

import (
	"context"

	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
)

type RouteEngine interface {
	FindMinCostPath(ctx context.Context, g *datastructure.Graph,
		source, destination string, filter routing.Filter) (routing.RouteResult, error)
	FindMinCostPaths(ctx context.Context, g *datastructure.Graph,
		queries []routing.Query) ([]routing.RouteResult, error)
	EdgeCost(e datastructure.Edge) float64
}
