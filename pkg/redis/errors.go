package redis

import "errors"

// Connect returns one of the first three; Healthcheck wraps the last one.
var (
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse REDIS_URL")
	ErrRedisNotReady                = errors.New("redis: server did not answer ping within the retry budget")
	ErrEmptyConnectionURL           = errors.New("redis: REDIS_URL is empty")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
