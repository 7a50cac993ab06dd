package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/metrics"
	"github.com/fossabot/mochimap-api/internal/node"
	"github.com/fossabot/mochimap-api/internal/service"
	"github.com/fossabot/mochimap-api/internal/store/clickhouse"
)

var config struct {
	NodeURL       string        `long:"node-url" env:"INGESTER_NODE_URL" description:"full node base url" default:"http://localhost:8888"`
	NodeRPS       int           `long:"node-rps" env:"INGESTER_NODE_RPS" description:"node requests per second" default:"10"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"INGESTER_CLICKHOUSE_DSN" description:"clickhouse dsn" default:"clickhouse://localhost:9000/default"`
	PollInterval  time.Duration `long:"poll-interval" env:"INGESTER_POLL_INTERVAL" description:"head poll interval" default:"1m"`
	Workers       int           `long:"workers" env:"INGESTER_WORKERS" description:"concurrent baseline fetchers" default:"4"`
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

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Connect to clickhouse", zap.Error(err))
	}

	client := node.NewClient(config.NodeURL, config.NodeRPS, metrics.NewNodeClient())

	cfg := service.DefaultBaselineIngesterConfig()
	cfg.PollInterval = config.PollInterval
	cfg.Workers = config.Workers

	ingester := service.NewBaselineIngester(client, repo, logger, cfg)

	logger.Info("Starting baseline ingester",
		zap.String("node_url", config.NodeURL),
		zap.Duration("poll_interval", cfg.PollInterval))
	if err := ingester.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Baseline ingester stopped", zap.Error(err))
	}
	logger.Info("Baseline ingester stopped")
}
