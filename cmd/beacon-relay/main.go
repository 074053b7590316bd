// Command beacon-relay serves the pixel and collect endpoints and forwards
// every hit to Tinybird. All settings come from the environment or a .env file.
package main

import (
	"context"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/beacon/internal/relay"
	"github.com/dmitrymomot/beacon/pkg/clientip"
	"github.com/dmitrymomot/beacon/pkg/config"
	"github.com/dmitrymomot/beacon/pkg/httpserver"
	"github.com/dmitrymomot/beacon/pkg/logger"
	"github.com/dmitrymomot/beacon/pkg/pageview"
	"github.com/dmitrymomot/beacon/pkg/ratelimiter"
	"github.com/dmitrymomot/beacon/pkg/redis"
	"github.com/dmitrymomot/beacon/pkg/requestid"
)

const serviceName = "beacon-relay"

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.New(append(
		logger.FromConfig(logCfg, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("relay stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		beaconCfg pageview.Config
		httpCfg   httpserver.Config
		redisCfg  redis.Config
		relayCfg  relay.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&beaconCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&relayCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	tracker, err := pageview.NewTracker(beaconCfg, nil,
		pageview.WithDispatchOptions(pageview.WithErrorHook(pageview.LogErrors(log))),
	)
	if err != nil {
		return err
	}

	opts := []relay.Option{relay.WithLogger(log)}

	var client *goredis.Client
	if redisCfg.Enabled() {
		client, err = redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, relay.WithReadinessChecks(httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)}))
	}

	if !relayCfg.RateLimitDisabled {
		var store ratelimiter.Store
		if client != nil {
			store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(redisCfg.KeyPrefix+"ratelimit:"))
			log.Info("rate limiting with redis store")
		} else {
			mem := ratelimiter.NewMemoryStore()
			defer mem.Close()
			store = mem
			log.Info("rate limiting with in-memory store")
		}

		limiter, err := ratelimiter.NewBucket(store, relayCfg.RateLimit)
		if err != nil {
			return err
		}
		opts = append(opts, relay.WithLimiter(limiter))
	}

	rl, err := relay.New(relayCfg, tracker, opts...)
	if err != nil {
		return err
	}

	server := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithDrainHook(rl.Drain),
	)

	log.Info("relay configured",
		logger.Table(beaconCfg.TableName),
		slog.String("endpoint", beaconCfg.Endpoint),
		slog.Bool("classification", !beaconCfg.DisableClassification),
	)
	return server.Run(ctx, rl.Handler())
}
