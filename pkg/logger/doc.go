// Package logger builds *slog.Logger instances for the beacon binaries.
//
// New takes functional options for format (json or text), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// Handle call, which is how the relay gets request_id and client_ip onto
// records without threading loggers through handlers.
//
// Config carries the env-driven settings (LOG_LEVEL, LOG_FORMAT, APP_ENV);
// FromConfig turns it into options.
//
// Attribute helpers in attr.go keep key names consistent: Error, RequestID,
// ClientIP, PageURL, Table, StatusCode, Duration, Component.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/logger"
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(append(logger.FromConfig(cfg, "beacon-relay"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)...)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "pageview delivery failed", logger.Error(err))
package logger
