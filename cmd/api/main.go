package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/chain"
	"github.com/fossabot/mochimap-api/internal/metrics"
	"github.com/fossabot/mochimap-api/internal/node"
	"github.com/fossabot/mochimap-api/internal/service"
	"github.com/fossabot/mochimap-api/internal/store/clickhouse"
	"github.com/fossabot/mochimap-api/internal/transport"
)

var config struct {
	Addr          string `long:"addr" env:"API_ADDR" description:"listen addr" default:":8080"`
	NodeURL       string `long:"node-url" env:"API_NODE_URL" description:"full node base url" default:"http://localhost:8888"`
	NodeRPS       int    `long:"node-rps" env:"API_NODE_RPS" description:"node requests per second" default:"10"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"API_CLICKHOUSE_DSN" description:"clickhouse dsn" default:"clickhouse://localhost:9000/default"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	baselines, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Connect to clickhouse", zap.Error(err))
	}

	client := node.NewClient(config.NodeURL, config.NodeRPS, metrics.NewNodeClient())
	engine := chain.NewStatsEngine(baselines, logger)
	stats := service.NewChainStatsService(client, engine, logger)
	handler := transport.NewChainHandler(stats, logger)

	router := mux.NewRouter()
	router.Use(metrics.HTTPMiddleware)
	handler.Register(router)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
