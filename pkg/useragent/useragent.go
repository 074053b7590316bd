package useragent

import "fmt"

// Result is the classification of a user agent string
type Result struct {
	OS             string `json:"os"`
	OSVersion      string `json:"osVersion"`
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browserVersion"`
}

// IsUnknown returns true if neither chain matched
func (r Result) IsUnknown() bool {
	return r.OS == OSUnknown && r.Browser == BrowserUnknown
}

// String returns a short human-readable identifier.
// Format: Browser/Version (OS Version), with "?" for missing versions.
func (r Result) String() string {
	if r.IsUnknown() {
		return "Unknown device"
	}
	return fmt.Sprintf("%s/%s (%s %s)", r.Browser, orQuestionMark(r.BrowserVersion), r.OS, orQuestionMark(r.OSVersion))
}

func orQuestionMark(v string) string {
	if v == "" {
		return "?"
	}
	return v
}

// Option configures a Classifier.
type Option func(*options)

type options struct {
	edgeChromium bool
}

// WithEdgeChromium makes Chromium-based Edge ("Edg/") classify as Edge
// instead of Chrome, and lets the Edge rule also match legacy "Edge/".
func WithEdgeChromium() Option {
	return func(o *options) { o.edgeChromium = true }
}

// Classifier holds the two compiled rule chains.
// It is immutable and safe for concurrent use.
type Classifier struct {
	os      []rule
	browser []rule
}

// New creates a Classifier. Without options it reproduces the default
// token set: Chrome excludes "Edge/" and "OPR/", Edge matches "Edg/".
func New(opts ...Option) *Classifier {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Classifier{
		os:      osRules,
		browser: browserRules(o.edgeChromium),
	}
}

var defaultClassifier = New()

// Classify evaluates the OS and browser chains independently.
// It never fails: unmatched input yields Unknown names and empty versions.
func (c *Classifier) Classify(ua string) Result {
	os, osVersion := firstMatch(c.os, ua, OSUnknown)
	browser := c.ParseBrowser(ua)
	return Result{
		OS:             os,
		OSVersion:      osVersion,
		Browser:        browser.Name,
		BrowserVersion: browser.Version,
	}
}

// ParseBrowser runs only the browser chain.
func (c *Classifier) ParseBrowser(ua string) Browser {
	name, version := firstMatch(c.browser, ua, BrowserUnknown)
	return Browser{Name: name, Version: version}
}

// Classify classifies ua with the default classifier.
func Classify(ua string) Result {
	return defaultClassifier.Classify(ua)
}
