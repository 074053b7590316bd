package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for rate limit storage backends.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it when
	// enough are available. A denied request consumes nothing and reports
	// the shortfall as a negative remaining count.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// refill applies the elapsed intervals to a bucket and returns its new token
// count and refill timestamp. last advances by whole intervals only.
func refill(tokens int, last, now time.Time, config Config) (int, time.Time) {
	if now.Before(last) {
		return tokens, last
	}
	// Cap intervals so tokens + intervals*rate cannot overflow.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	elapsed := int64(now.Sub(last) / config.RefillInterval)
	if elapsed <= 0 {
		return tokens, last
	}
	last = last.Add(time.Duration(elapsed) * config.RefillInterval)
	intervals := int(min(elapsed, maxIntervals))
	return min(tokens+intervals*config.RefillRate, config.Capacity), last
}
