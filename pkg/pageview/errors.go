package pageview

import (
	"errors"
	"fmt"
)

// Configuration errors are returned by Config.Validate, NewDispatcher and
// NewTracker before any network activity. Each wraps ErrInvalidConfig.
var (
	ErrInvalidConfig    = errors.New("pageview: invalid configuration")
	ErrMissingTableName = fmt.Errorf("%w: table name is required", ErrInvalidConfig)
	ErrMissingToken     = fmt.Errorf("%w: token is required", ErrInvalidConfig)
	ErrInvalidEndpoint  = fmt.Errorf("%w: endpoint must be an absolute http or https URL", ErrInvalidConfig)
	ErrInvalidFallback  = fmt.Errorf("%w: unknown fallback policy", ErrInvalidConfig)
)

// Delivery errors never escape Send. They reach the ErrorHook and the Delivery.
var (
	ErrEncode           = errors.New("pageview: failed to encode event")
	ErrTransport        = errors.New("pageview: transport failure")
	ErrUnexpectedStatus = errors.New("pageview: unexpected response status")
)

var (
	ErrInvalidSnapshot = errors.New("pageview: invalid snapshot payload")
	ErrWaitTimeout     = errors.New("pageview: timed out waiting for delivery")
)
