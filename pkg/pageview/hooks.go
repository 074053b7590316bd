package pageview

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/beacon/pkg/logger"
)

// ErrorHook observes failed deliveries. It runs on the sending goroutine.
// A panic inside the hook is recovered and discarded.
type ErrorHook func(ctx context.Context, event Event, err error)

// LogErrors returns an ErrorHook that logs failures at WARN level.
// A nil logger uses slog.Default().
func LogErrors(log *slog.Logger) ErrorHook {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("pageview"))
	return func(ctx context.Context, event Event, err error) {
		log.WarnContext(ctx, "pageview delivery failed",
			slog.String("url", deref(event.URL)),
			slog.String("timestamp", event.Timestamp),
			logger.Error(err),
		)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
