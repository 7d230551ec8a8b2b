package controllers

import (
	"context"

	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
	"github.com/aryaseta/costroute/pkg/http/usecases"
)

type RoutingService interface {
	MinCostPath(ctx context.Context, spec usecases.QuerySpec) (routing.RouteResult, error)
	BatchMinCostPath(ctx context.Context, spec usecases.BatchSpec) ([]routing.RouteResult, error)
	EdgeCost(e datastructure.Edge) float64
}
