package main

import (
	"context"

	"github.com/hasselalcala/near-event-listener/internal/config"
	"github.com/hasselalcala/near-event-listener/internal/eventstream"
	"github.com/hasselalcala/near-event-listener/internal/handlers/cli"
	"github.com/hasselalcala/near-event-listener/internal/infra/blockchain/near"
	redisstorage "github.com/hasselalcala/near-event-listener/internal/infra/storage/redis"
	"github.com/hasselalcala/near-event-listener/internal/pkg/logger"
	"github.com/hasselalcala/near-event-listener/internal/pkg/resilience/retry"
	"github.com/hasselalcala/near-event-listener/internal/pkg/telemetry"
	transporthttp "github.com/hasselalcala/near-event-listener/internal/pkg/transport/http"
	"github.com/hasselalcala/near-event-listener/internal/pkg/transport/jsonrpc"
)

const serviceName = "near-event-listener"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatal(ctx, "failed to load configuration", "error", err)
	}

	telemetryShutdown, err := telemetry.Init(ctx, serviceName)
	if err != nil {
		logger.Init()
		logger.Fatal(ctx, "failed to initialize telemetry", "error", err)
	}
	defer telemetryShutdown(ctx)

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		logger.Fatal(ctx, "failed to initialize logger", "error", err)
	}
	defer logger.Sync()

	listenerOpts := []eventstream.Option{
		eventstream.WithPollInterval(cfg.PollInterval),
		eventstream.WithRetry(retry.New(
			retry.WithAttempts(cfg.RetryAttempts),
			retry.WithDelay(cfg.RetryDelay),
			retry.WithMaxDelay(cfg.RetryMaxDelay),
		)),
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", "error", err)
		}
		defer redisClient.Close()

		listenerOpts = append(listenerOpts, eventstream.WithCheckpointStorage(redisClient))
	}

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.HTTPTimeout))
	rpcClient := jsonrpc.NewClient(httpClient, cfg.RPCEndpoint)
	chain := near.NewClient(rpcClient)

	listener, err := eventstream.New(chain, eventstream.Config{
		AccountID:   cfg.AccountID,
		MethodName:  cfg.MethodName,
		StartHeight: cfg.StartHeight,
	}, listenerOpts...)
	if err != nil {
		logger.Fatal(ctx, "failed to build event listener", "error", err)
	}

	if err := cli.Run(ctx, listener); err != nil {
		logger.Fatal(ctx, "listener terminated with error", "error", err)
	}
}
