package pageview

import (
	"fmt"
	"net/url"
)

// DefaultEndpoint is the Tinybird events API used when Config.Endpoint is empty.
const DefaultEndpoint = "https://api.europe-west2.gcp.tinybird.co/v0/events"

// Config describes where events go and how they are shaped.
type Config struct {
	Endpoint  string `env:"BEACON_ENDPOINT" envDefault:"https://api.europe-west2.gcp.tinybird.co/v0/events"`
	TableName string `env:"BEACON_TABLE_NAME"`
	Token     string `env:"BEACON_TOKEN"`

	// Fallback selects what missing values become. Empty means FallbackPlaceholder.
	Fallback Fallback `env:"BEACON_FALLBACK" envDefault:"placeholder"`

	// DisableClassification drops os, osVersion, browser and browserVersion from events.
	DisableClassification bool `env:"BEACON_DISABLE_UA_CLASSIFICATION" envDefault:"false"`

	// EdgeChromium makes "Edg/" user agents classify as Edge rather than Chrome.
	EdgeChromium bool `env:"BEACON_EDGE_CHROMIUM" envDefault:"false"`
}

// Validate checks required fields. It performs no I/O.
func (c Config) Validate() error {
	if c.TableName == "" {
		return ErrMissingTableName
	}
	if c.Token == "" {
		return ErrMissingToken
	}

	switch c.Fallback {
	case "", FallbackPlaceholder, FallbackNull:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFallback, c.Fallback)
	}

	if _, err := c.endpointURL(); err != nil {
		return err
	}
	return nil
}

// RequestURL returns the endpoint with the name and token query parameters set.
// Parameters already present on the endpoint are kept.
func (c Config) RequestURL() (string, error) {
	u, err := c.endpointURL()
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("name", c.TableName)
	q.Set("token", c.Token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c Config) endpointURL() (*url.URL, error) {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidEndpoint)
	}
	return u, nil
}

func (c Config) fallback() Fallback {
	if c.Fallback == "" {
		return FallbackPlaceholder
	}
	return c.Fallback
}
