package controllers

import (
	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
)

type nodePayload struct {
	Id   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

type edgePayload struct {
	From         string  `json:"from" validate:"required"`
	To           string  `json:"to" validate:"required"`
	Distance     float64 `json:"distance" validate:"required,gt=0"`
	Terrain      int     `json:"terrain" validate:"required,min=1"`
	MaterialRate float64 `json:"material_rate" validate:"min=0"`
	LaborRate    float64 `json:"labor_rate" validate:"min=0"`
}

type endpointPayload struct {
	Source         string   `json:"source"`
	Destination    string   `json:"destination"`
	TerrainCeiling *int     `json:"terrain_ceiling" validate:"omitempty,min=1"`
	MaxCost        *float64 `json:"max_cost" validate:"omitempty,min=0"`
}

// minCostPathRequest carries an optional inline graph; when nodes and
// edges are omitted the server's loaded network snapshot is used.
// Source/destination may be empty — that is the "not yet specified"
// state and yields a no_query result rather than an error.
type minCostPathRequest struct {
	Nodes []nodePayload `json:"nodes" validate:"omitempty,dive"`
	Edges []edgePayload `json:"edges" validate:"omitempty,dive"`
	endpointPayload
}

type batchMinCostPathRequest struct {
	Nodes   []nodePayload     `json:"nodes" validate:"omitempty,dive"`
	Edges   []edgePayload     `json:"edges" validate:"omitempty,dive"`
	Queries []endpointPayload `json:"queries" validate:"required,min=1,dive"`
}

type edgeResponse struct {
	Id           int     `json:"id"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Distance     float64 `json:"distance"`
	Terrain      int     `json:"terrain"`
	MaterialRate float64 `json:"material_rate"`
	LaborRate    float64 `json:"labor_rate"`
	Cost         float64 `json:"cost"`
}

type routeResultResponse struct {
	Status string         `json:"status"`
	Cost   *float64       `json:"cost,omitempty"`
	Path   []edgeResponse `json:"path"`
}

func NewRouteResultResponse(result routing.RouteResult, edgeCost func(datastructure.Edge) float64) routeResultResponse {
	resp := routeResultResponse{
		Status: result.GetStatus().String(),
		Path:   make([]edgeResponse, 0, len(result.GetEdges())),
	}
	if result.Found() {
		cost := result.GetCost()
		resp.Cost = &cost
	}
	for _, e := range result.GetEdges() {
		resp.Path = append(resp.Path, edgeResponse{
			Id:           e.GetEdgeId(),
			From:         e.GetFrom(),
			To:           e.GetTo(),
			Distance:     e.GetDistance(),
			Terrain:      e.GetTerrain(),
			MaterialRate: e.GetMaterialRate(),
			LaborRate:    e.GetLaborRate(),
			Cost:         edgeCost(e),
		})
	}
	return resp
}

func NewBatchRouteResultResponse(results []routing.RouteResult,
	edgeCost func(datastructure.Edge) float64) []routeResultResponse {
	out := make([]routeResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, NewRouteResultResponse(r, edgeCost))
	}
	return out
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
