// Package httpserver wraps net/http with the lifecycle the relay needs:
// signal-aware Run, graceful Shutdown, drain hooks and health probes.
//
//   - Run binds the listener first, so Addr reports the real address even for
//     ":0", then serves until the context is cancelled or SIGINT/SIGTERM arrives.
//   - Shutdown stops accepting connections, waits for active requests and then
//     runs WithDrainHook callbacks under the same deadline. The relay uses a
//     drain hook to wait for pageview deliveries still in flight.
//   - HealthCheckHandler serves liveness ("ALIVE") or readiness ("READY" /
//     "NOT_READY") depending on whether checks are supplied.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/httpserver"
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithDrainHook(relay.Drain),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Error Handling
//
// Start failures are joined with ErrStart, shutdown failures (including drain
// hook errors) with ErrShutdown.
package httpserver
