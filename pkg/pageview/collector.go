package pageview

import (
	"context"
	"time"

	"github.com/dmitrymomot/beacon/pkg/useragent"
)

// Collector turns an environment snapshot into an Event.
// It is safe for concurrent use.
type Collector struct {
	env        Environment
	now        func() time.Time
	fallback   Fallback
	classifier *useragent.Classifier
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithClock overrides the time source used for Event.Timestamp.
func WithClock(now func() time.Time) CollectorOption {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFallback sets the missing-value policy. Unknown values are ignored.
func WithFallback(f Fallback) CollectorOption {
	return func(c *Collector) {
		switch f {
		case FallbackPlaceholder, FallbackNull:
			c.fallback = f
		}
	}
}

// WithClassifier replaces the default user agent classifier.
func WithClassifier(cl *useragent.Classifier) CollectorOption {
	return func(c *Collector) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

// WithoutClassification leaves the os and browser fields out of events.
func WithoutClassification() CollectorOption {
	return func(c *Collector) {
		c.classifier = nil
	}
}

// NewCollector creates a Collector reading from env.
// A nil env produces events built from an empty snapshot.
func NewCollector(env Environment, opts ...CollectorOption) *Collector {
	c := &Collector{
		env:        env,
		now:        time.Now,
		fallback:   FallbackPlaceholder,
		classifier: useragent.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect reads the configured environment and builds an Event. It never fails.
func (c *Collector) Collect(ctx context.Context) Event {
	return c.CollectFrom(ctx, c.env)
}

// CollectFrom builds an Event from env instead of the configured environment.
func (c *Collector) CollectFrom(ctx context.Context, env Environment) Event {
	var s Snapshot
	if env != nil {
		s = env.Snapshot(ctx)
	}
	return c.Build(s)
}

// Build applies the fallback policy and classification to s.
func (c *Collector) Build(s Snapshot) Event {
	e := Event{
		URL:            c.text(s.URL, NoURL),
		Referrer:       c.text(s.Referrer, NoReferrer),
		Title:          c.text(s.Title, NoTitle),
		UserAgent:      c.text(s.UserAgent, NoUserAgent),
		Language:       c.text(s.Language, NoLanguage),
		ScreenWidth:    c.dimension(s.ScreenWidth, NoScreenWidth),
		ScreenHeight:   c.dimension(s.ScreenHeight, NoScreenHeight),
		ViewportWidth:  c.dimension(s.ViewportWidth, NoViewportWidth),
		ViewportHeight: c.dimension(s.ViewportHeight, NoViewportHeight),
		Timestamp:      c.now().UTC().Format(TimestampLayout),
	}

	if c.classifier == nil {
		return e
	}

	// Classification sees the user agent after its fallback was applied.
	var ua string
	if e.UserAgent != nil {
		ua = *e.UserAgent
	}
	res := c.classifier.Classify(ua)
	e.OS = c.classified(res.OS, NoOS)
	e.OSVersion = c.classified(res.OSVersion, NoOSVersion)
	e.Browser = c.classified(res.Browser, NoBrowser)
	e.BrowserVersion = c.classified(res.BrowserVersion, NoBrowserVersion)
	return e
}

func (c *Collector) text(v, placeholder string) *string {
	if v != "" {
		return &v
	}
	if c.fallback == FallbackNull {
		return nil
	}
	return &placeholder
}

func (c *Collector) dimension(v int, placeholder string) Dimension {
	if v > 0 {
		return Pixels(v)
	}
	if c.fallback == FallbackNull {
		return Dimension{}
	}
	return Missing(placeholder)
}

// classified keeps classifier output verbatim under FallbackNull, so an
// unmatched version stays an empty string rather than null.
func (c *Collector) classified(v, placeholder string) *string {
	if v == "" && c.fallback == FallbackPlaceholder {
		return &placeholder
	}
	return &v
}
