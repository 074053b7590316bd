package relay

import (
	"fmt"

	"github.com/dmitrymomot/beacon/pkg/ratelimiter"
)

// DefaultMaxBodyBytes caps POST /collect bodies.
const DefaultMaxBodyBytes = 16 << 10

// Config holds the relay's HTTP surface settings.
type Config struct {
	MaxBodyBytes   int64    `env:"RELAY_MAX_BODY_BYTES" envDefault:"16384"`
	AllowedOrigins []string `env:"RELAY_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// TrustProxy enables TrustedHeaders for client IP resolution, in order.
	// Turn it off when the relay is exposed without a proxy in front.
	TrustProxy     bool     `env:"RELAY_TRUST_PROXY" envDefault:"true"`
	TrustedHeaders []string `env:"RELAY_TRUSTED_HEADERS" envDefault:"CF-Connecting-IP,X-Forwarded-For,X-Real-IP" envSeparator:","`

	RateLimitDisabled bool `env:"RATE_LIMIT_DISABLED"`
	RateLimit         ratelimiter.Config
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	}
	if !c.RateLimitDisabled {
		if err := c.RateLimit.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
