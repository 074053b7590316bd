// Package redis connects to an optional Redis server backing the relay's
// shared rate limit state.
//
// Connect retries the initial ping according to Config, and Healthcheck
// adapts a client into a readiness check for httpserver.HealthCheckHandler.
// Config is filled from REDIS_* environment variables; when REDIS_URL is empty
// Config.Enabled reports false and the relay stays on in-memory state.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/redis"
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//	}
//
// # Error Handling
//
// Errors are joined with ErrEmptyConnectionURL, ErrFailedToParseRedisConnString,
// ErrRedisNotReady or ErrHealthcheckFailed and can be matched with errors.Is.
package redis
