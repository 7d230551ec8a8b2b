package main

import (
	"context"
	"flag"

	"github.com/aryaseta/costroute/pkg/costmodel"
	"github.com/aryaseta/costroute/pkg/datastructure"
	"github.com/aryaseta/costroute/pkg/engine/routing"
	"github.com/aryaseta/costroute/pkg/http"
	"github.com/aryaseta/costroute/pkg/http/usecases"
	"github.com/aryaseta/costroute/pkg/logger"
	"github.com/aryaseta/costroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable request rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}
	viper.SetDefault("NETWORK_FILE", "./data/network.json")

	snapshot, err := datastructure.ReadGraph(viper.GetString("NETWORK_FILE"))
	if err != nil {
		panic(err)
	}
	logger.Info("network snapshot loaded",
		zap.Int("nodes", snapshot.NumberOfVertices()),
		zap.Int("edges", snapshot.NumberOfEdges()),
	)

	routeEngine := routing.NewRouteEngine(costmodel.NewConstructionCostFunction())
	routingService := usecases.NewRoutingService(logger, routeEngine, snapshot)

	api := http.NewServer(logger)

	ctx, cleanup := newContext()
	_, err = api.Use(ctx, logger, *useRateLimit, routingService)
	if err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("costroute server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func newContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, cancel
}
