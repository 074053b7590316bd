package pageview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Fallback is the policy applied to values the environment could not provide.
type Fallback string

const (
	// FallbackPlaceholder replaces a missing value with a descriptive string such as "no url".
	FallbackPlaceholder Fallback = "placeholder"
	// FallbackNull emits a missing value as JSON null. The key stays present.
	FallbackNull Fallback = "null"
)

// Placeholders used by FallbackPlaceholder.
const (
	NoURL            = "no url"
	NoReferrer       = "no referrer"
	NoTitle          = "no title"
	NoUserAgent      = "no user agent"
	NoLanguage       = "no language"
	NoScreenWidth    = "no screen width"
	NoScreenHeight   = "no screen height"
	NoViewportWidth  = "no viewport width"
	NoViewportHeight = "no viewport height"
	NoOS             = "no os"
	NoOSVersion      = "no os version"
	NoBrowser        = "no browser"
	NoBrowserVersion = "no browser version"
)

// TimestampLayout formats Event.Timestamp: ISO-8601 in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Event is one pageview record in its wire shape.
//
// String fields are nil when the value is missing under FallbackNull.
// The classification fields are nil when classification is disabled and are
// then left out of the JSON entirely.
type Event struct {
	URL            *string   `json:"url"`
	Referrer       *string   `json:"referrer"`
	Title          *string   `json:"title"`
	UserAgent      *string   `json:"userAgent"`
	Language       *string   `json:"language"`
	ScreenWidth    Dimension `json:"screenWidth"`
	ScreenHeight   Dimension `json:"screenHeight"`
	ViewportWidth  Dimension `json:"viewportWidth"`
	ViewportHeight Dimension `json:"viewportHeight"`
	Timestamp      string    `json:"timestamp"`

	OS             *string `json:"os,omitempty"`
	OSVersion      *string `json:"osVersion,omitempty"`
	Browser        *string `json:"browser,omitempty"`
	BrowserVersion *string `json:"browserVersion,omitempty"`
}

// Dimension is a pixel measurement that may be absent.
// It encodes as a JSON number when Value is positive, otherwise as the
// Placeholder string when one is set, otherwise as null.
type Dimension struct {
	Value       int
	Placeholder string
}

// Pixels returns a present dimension.
func Pixels(n int) Dimension {
	return Dimension{Value: n}
}

// Missing returns an absent dimension rendered as placeholder, or null when placeholder is empty.
func Missing(placeholder string) Dimension {
	return Dimension{Placeholder: placeholder}
}

// IsMissing reports whether the dimension carries no measurement.
func (d Dimension) IsMissing() bool {
	return d.Value <= 0
}

// MarshalJSON implements json.Marshaler.
func (d Dimension) MarshalJSON() ([]byte, error) {
	switch {
	case d.Value > 0:
		return strconv.AppendInt(nil, int64(d.Value), 10), nil
	case d.Placeholder != "":
		return json.Marshal(d.Placeholder)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a number, a string or null.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*d = Dimension{}

	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &d.Placeholder)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("dimension: %w", err)
		}
		v, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return fmt.Errorf("dimension: %w", err)
			}
			v = int64(f)
		}
		d.Value = int(v)
		return nil
	}
}

// String returns the value as text, the placeholder, or "null".
func (d Dimension) String() string {
	switch {
	case d.Value > 0:
		return strconv.Itoa(d.Value)
	case d.Placeholder != "":
		return d.Placeholder
	default:
		return "null"
	}
}
