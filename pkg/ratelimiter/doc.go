// Package ratelimiter provides token bucket rate limiting with in-memory and
// Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied without consuming any, and Result.Remaining is negative.
//
// # Stores
//
//   - MemoryStore – per process, mutex guarded, stale buckets swept periodically
//   - RedisStore – shared between instances; the refill-and-take step is a
//     single Lua script evaluated with the Redis server clock
//
// # Usage
//
//	var cfg ratelimiter.Config
//	config.MustLoad(&cfg) // RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE, RATE_LIMIT_REFILL_INTERVAL
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter, clientip.GetIP, ratelimiter.WithFailOpen()))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited route, plus Retry-After on 429 responses.
//
// # Error Handling
//
// NewBucket returns ErrInvalidConfig for non-positive settings, AllowN returns
// ErrInvalidTokenCount for n <= 0, and RedisStore wraps backend failures with
// ErrStoreUnavailable.
package ratelimiter
