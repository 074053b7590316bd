// Package pageview records a single pageview and ships it as one JSON event
// to a Tinybird-style ingestion endpoint.
//
// The pipeline has three parts:
//   - Environment – where raw values come from (a fixed Snapshot, a function, or an inbound *http.Request)
//   - Collector – turns a Snapshot into an Event, applying the fallback policy and user agent classification
//   - Dispatcher – posts the Event once, on its own goroutine, and never reports failure to the caller
//
// Tracker wires the three together from a Config.
//
// # Wire format
//
// The request is POST {endpoint}?name={table}&token={token} with
// Content-Type: application/json. The body is a flat object with the keys
// url, referrer, title, userAgent, language, screenWidth, screenHeight,
// viewportWidth, viewportHeight and timestamp, plus os, osVersion, browser
// and browserVersion unless classification is disabled.
//
// Missing values follow the Fallback policy. FallbackPlaceholder (the default)
// writes strings such as "no url" or "no screen width"; FallbackNull writes
// null. Dimensions of zero or less count as missing.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/pageview"
//
//	tracker, err := pageview.NewTracker(pageview.Config{
//		TableName: "pageviews",
//		Token:     os.Getenv("TINYBIRD_TOKEN"),
//	}, pageview.StaticEnvironment{URL: "https://example.com/"},
//		pageview.WithDispatchOptions(pageview.WithErrorHook(pageview.LogErrors(log))),
//	)
//	if err != nil {
//		return err // always wraps pageview.ErrInvalidConfig
//	}
//
//	tracker.Track(ctx) // fire and forget
//
//	// Short-lived processes should wait so the request is not cut off.
//	if err := tracker.Track(ctx).Wait(); err != nil {
//		log.Warn("pageview not delivered", logger.Error(err))
//	}
//
// # Error Handling
//
// Configuration problems are returned from NewTracker, NewDispatcher and
// Config.Validate and wrap ErrInvalidConfig. Delivery problems (ErrEncode,
// ErrTransport, ErrUnexpectedStatus) are never returned by Send; they are
// passed to the ErrorHook and recorded on the Delivery.
//
// There are no retries, no batching and no offline queue.
package pageview
