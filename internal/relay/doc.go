// Package relay is the HTTP front of the beacon. Browsers (or anything else)
// hit it with a pixel request or a JSON snapshot, and it forwards each hit to
// Tinybird as a pageview through a pageview.Tracker.
//
// Responses never wait for the upstream: the pixel and the 202 go out as soon
// as the snapshot is read. Relay.Drain lets shutdown wait for deliveries
// already started.
//
// Middleware order is panic recovery, request ID, client IP, then the rate
// limiter on the beacon routes only. Health probes are never limited.
package relay
