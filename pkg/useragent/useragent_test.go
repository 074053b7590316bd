package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/beacon/pkg/useragent"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	chromeAndroidUA = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	edgeChromiumUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59"
	edgeLegacyUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.19582"
	operaUA         = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 OPR/77.0.4054.90"
	headlessUA      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0.6099.28 Safari/537.36"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Result
	}{
		{
			name: "Chrome on Windows",
			ua:   chromeWindowsUA,
			expected: useragent.Result{
				OS: useragent.OSWindows, OSVersion: "10.0",
				Browser: useragent.BrowserChrome, BrowserVersion: "91.0.4472.124",
			},
		},
		{
			name: "Safari on macOS",
			ua:   safariMacUA,
			expected: useragent.Result{
				OS: useragent.OSMacOS, OSVersion: "10.15.7",
				Browser: useragent.BrowserSafari, BrowserVersion: "14.0",
			},
		},
		{
			// "like Mac OS X" wins over "iPhone OS" because macOS comes first in the chain
			name: "Safari on iPhone resolves to macOS",
			ua:   safariIPhoneUA,
			expected: useragent.Result{
				OS: useragent.OSMacOS, OSVersion: "",
				Browser: useragent.BrowserSafari, BrowserVersion: "14.0",
			},
		},
		{
			name: "iPhone OS without Mac OS X token",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0) Mobile Safari/604.1",
			expected: useragent.Result{
				OS: useragent.OSiOS, OSVersion: "15.0",
				Browser: useragent.BrowserSafari, BrowserVersion: "",
			},
		},
		{
			name: "iPad CPU OS",
			ua:   "Mozilla/5.0 (iPad; CPU OS 12_4_1) AppleWebKit/605.1.15",
			expected: useragent.Result{
				OS: useragent.OSiOS, OSVersion: "12.4.1",
				Browser: useragent.BrowserUnknown, BrowserVersion: "",
			},
		},
		{
			name: "Chrome on Android",
			ua:   chromeAndroidUA,
			expected: useragent.Result{
				OS: useragent.OSAndroid, OSVersion: "11",
				Browser: useragent.BrowserChrome, BrowserVersion: "91.0.4472.124",
			},
		},
		{
			name: "Firefox on Linux",
			ua:   firefoxLinuxUA,
			expected: useragent.Result{
				OS: useragent.OSLinux, OSVersion: "x86_64",
				Browser: useragent.BrowserFirefox, BrowserVersion: "89.0",
			},
		},
		{
			name: "Firefox on macOS with dotted version",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:89.0) Gecko/20100101 Firefox/89.0",
			expected: useragent.Result{
				OS: useragent.OSMacOS, OSVersion: "10",
				Browser: useragent.BrowserFirefox, BrowserVersion: "89.0",
			},
		},
		{
			name: "Chromium Edge classifies as Chrome by default",
			ua:   edgeChromiumUA,
			expected: useragent.Result{
				OS: useragent.OSWindows, OSVersion: "10.0",
				Browser: useragent.BrowserChrome, BrowserVersion: "91.0.4472.124",
			},
		},
		{
			name: "legacy Edge matches no browser rule by default",
			ua:   edgeLegacyUA,
			expected: useragent.Result{
				OS: useragent.OSWindows, OSVersion: "10.0",
				Browser: useragent.BrowserUnknown, BrowserVersion: "",
			},
		},
		{
			name: "Opera",
			ua:   operaUA,
			expected: useragent.Result{
				OS: useragent.OSWindows, OSVersion: "10.0",
				Browser: useragent.BrowserOpera, BrowserVersion: "77.0.4054.90",
			},
		},
		{
			name: "HeadlessChrome",
			ua:   headlessUA,
			expected: useragent.Result{
				OS: useragent.OSLinux, OSVersion: "x86_64",
				Browser: useragent.BrowserHeadlessChrome, BrowserVersion: "120.0.6099.28",
			},
		},
		{
			name: "Windows NT without version",
			ua:   "Something (Windows NT; rv:1)",
			expected: useragent.Result{
				OS: useragent.OSWindows, OSVersion: "",
				Browser: useragent.BrowserUnknown, BrowserVersion: "",
			},
		},
		{
			name: "Empty UA",
			ua:   "",
			expected: useragent.Result{
				OS: useragent.OSUnknown, OSVersion: "",
				Browser: useragent.BrowserUnknown, BrowserVersion: "",
			},
		},
		{
			name: "Unrecognized UA",
			ua:   "curl/8.4.0",
			expected: useragent.Result{
				OS: useragent.OSUnknown, OSVersion: "",
				Browser: useragent.BrowserUnknown, BrowserVersion: "",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.Classify(tc.ua))
		})
	}
}

func TestClassify_EdgeChromium(t *testing.T) {
	t.Parallel()

	c := useragent.New(useragent.WithEdgeChromium())

	tests := []struct {
		name     string
		ua       string
		expected useragent.Browser
	}{
		{"Chromium Edge", edgeChromiumUA, useragent.Browser{Name: useragent.BrowserEdge, Version: "91.0.864.59"}},
		{"legacy Edge", edgeLegacyUA, useragent.Browser{Name: useragent.BrowserEdge, Version: "18.19582"}},
		{"Chrome is still Chrome", chromeWindowsUA, useragent.Browser{Name: useragent.BrowserChrome, Version: "91.0.4472.124"}},
		{"Opera is still Opera", operaUA, useragent.Browser{Name: useragent.BrowserOpera, Version: "77.0.4054.90"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, c.ParseBrowser(tc.ua))
		})
	}
}

func TestClassify_Properties(t *testing.T) {
	t.Parallel()

	wrappers := []struct{ prefix, suffix string }{
		{"", ""},
		{"Mozilla/5.0 (", "; Win64; x64)"},
		{"garbage ", " trailing garbage"},
		{"(", ")"},
	}

	t.Run("Windows NT 10.0 always yields Windows 10.0", func(t *testing.T) {
		t.Parallel()
		for _, w := range wrappers {
			res := useragent.Classify(w.prefix + "Windows NT 10.0" + w.suffix)
			assert.Equal(t, useragent.OSWindows, res.OS)
			assert.Equal(t, "10.0", res.OSVersion)
		}
	})

	t.Run("Mac OS X 10_15_7 always yields 10.15.7", func(t *testing.T) {
		t.Parallel()
		for _, w := range wrappers {
			res := useragent.Classify(w.prefix + "Mac OS X 10_15_7" + w.suffix)
			assert.Equal(t, "10.15.7", res.OSVersion)
		}
	})

	t.Run("Chrome and Safari tokens without Edge or OPR yield Chrome", func(t *testing.T) {
		t.Parallel()
		for _, w := range wrappers {
			res := useragent.Classify(w.prefix + "Chrome/91.0 Safari/537.36" + w.suffix)
			assert.Equal(t, useragent.BrowserChrome, res.Browser)
			assert.Equal(t, "91.0", res.BrowserVersion)
		}
	})

	t.Run("Version and Safari tokens without Chrome yield Safari", func(t *testing.T) {
		t.Parallel()
		for _, w := range wrappers {
			res := useragent.Classify(w.prefix + "Version/14.0 Safari/605.1.15" + w.suffix)
			assert.Equal(t, useragent.BrowserSafari, res.Browser)
			assert.Equal(t, "14.0", res.BrowserVersion)
		}
	})

	t.Run("unrecognized input never panics", func(t *testing.T) {
		t.Parallel()
		inputs := []string{"", " ", "\x00\xff", "Windows NT", "Chrome/", "Linux ", "Mac OS X _", "iPad; CPU OS ;"}
		for _, in := range inputs {
			assert.NotPanics(t, func() { useragent.Classify(in) })
		}
	})
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		res      useragent.Result
		expected string
	}{
		{
			name:     "full result",
			res:      useragent.Classify(chromeWindowsUA),
			expected: "Chrome/91.0.4472.124 (Windows 10.0)",
		},
		{
			name:     "missing versions",
			res:      useragent.Result{OS: useragent.OSLinux, Browser: useragent.BrowserUnknown},
			expected: "Unknown/? (Linux ?)",
		},
		{
			name:     "unknown",
			res:      useragent.Classify(""),
			expected: "Unknown device",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.res.String())
		})
	}
}
