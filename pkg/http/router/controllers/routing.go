package controllers

import (
	"fmt"
	"net/http"

	"github.com/aryaseta/costroute/pkg/http/usecases"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/aryaseta/costroute/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/routes/minCost", api.minCostPath)
	group.POST("/routes/minCost/batch", api.batchMinCostPath)
}

func (api *routingAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *routingAPI) minCostPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request minCostPathRequest

	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	result, err := api.routingService.MinCostPath(r.Context(), usecases.QuerySpec{
		Nodes: newNodeSpecs(request.Nodes),
		Edges: newEdgeSpecs(request.Edges),
		EndpointSpec: usecases.EndpointSpec{
			Source:         request.Source,
			Destination:    request.Destination,
			TerrainCeiling: request.TerrainCeiling,
			MaxCost:        request.MaxCost,
		},
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRouteResultResponse(result, api.routingService.EdgeCost)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) batchMinCostPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchMinCostPathRequest

	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	queries := make([]usecases.EndpointSpec, 0, len(request.Queries))
	for _, q := range request.Queries {
		queries = append(queries, usecases.EndpointSpec{
			Source:         q.Source,
			Destination:    q.Destination,
			TerrainCeiling: q.TerrainCeiling,
			MaxCost:        q.MaxCost,
		})
	}

	results, err := api.routingService.BatchMinCostPath(r.Context(), usecases.BatchSpec{
		Nodes:   newNodeSpecs(request.Nodes),
		Edges:   newEdgeSpecs(request.Edges),
		Queries: queries,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewBatchRouteResultResponse(results, api.routingService.EdgeCost)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func newNodeSpecs(payloads []nodePayload) []usecases.NodeSpec {
	specs := make([]usecases.NodeSpec, 0, len(payloads))
	for _, n := range payloads {
		specs = append(specs, usecases.NodeSpec{Id: n.Id, Name: n.Name})
	}
	return specs
}

func newEdgeSpecs(payloads []edgePayload) []usecases.EdgeSpec {
	specs := make([]usecases.EdgeSpec, 0, len(payloads))
	for _, e := range payloads {
		specs = append(specs, usecases.EdgeSpec{
			From:         e.From,
			To:           e.To,
			Distance:     e.Distance,
			Terrain:      e.Terrain,
			MaterialRate: e.MaterialRate,
			LaborRate:    e.LaborRate,
		})
	}
	return specs
}
