package pageview_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/pageview"
)

func TestRequestEnvironment_Query(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet,
		"/p.gif?url=https%3A%2F%2Fexample.com%2Fa&ref=https%3A%2F%2Fgoogle.com%2F&title=Hello+World&lang=de-DE&sw=1920&sh=1080&vw=1280&vh=720", nil)
	r.Header.Set("User-Agent", testUA)
	r.Header.Set("Referer", "https://example.com/ignored")
	r.Header.Set("Accept-Language", "fr-FR")

	got := pageview.NewRequestEnvironment(r).Snapshot(context.Background())
	assert.Equal(t, pageview.Snapshot{
		URL:            "https://example.com/a",
		Referrer:       "https://google.com/",
		Title:          "Hello World",
		UserAgent:      testUA,
		Language:       "de-DE",
		ScreenWidth:    1920,
		ScreenHeight:   1080,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}, got)
}

func TestRequestEnvironment_HeaderFallbacks(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/p.gif?sw=abc&vh=-3", nil)
	r.Header.Set("User-Agent", testUA)
	r.Header.Set("Referer", "https://example.com/page")
	r.Header.Set("Accept-Language", "fr-CH, fr;q=0.9, en;q=0.8")

	got := pageview.NewRequestEnvironment(r).Snapshot(context.Background())
	assert.Equal(t, "https://example.com/page", got.URL)
	assert.Empty(t, got.Referrer)
	assert.Equal(t, testUA, got.UserAgent)
	assert.Equal(t, "fr-CH", got.Language)
	assert.Zero(t, got.ScreenWidth)
	assert.Equal(t, -3, got.ViewportHeight)
}

func TestRequestEnvironment_AcceptLanguageWeights(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/p.gif", nil)
	r.Header.Set("Accept-Language", "en;q=0.5, nl-BE;q=0.9")

	got := pageview.NewRequestEnvironment(r).Snapshot(context.Background())
	assert.Equal(t, "nl-BE", got.Language)
}

func TestSnapshotFromJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected pageview.Snapshot
		wantErr  error
	}{
		{
			name: "body values win",
			body: `{"url":"https://example.com/x","title":"X","userAgent":"custom","screenWidth":390,"viewportHeight":664}`,
			expected: pageview.Snapshot{
				URL: "https://example.com/x", Title: "X", UserAgent: "custom", Language: "en-US",
				ScreenWidth: 390, ViewportHeight: 664,
			},
		},
		{
			name: "empty body uses headers",
			body: "",
			expected: pageview.Snapshot{
				URL: "https://example.com/referer", UserAgent: testUA, Language: "en-US",
			},
		},
		{
			name:    "malformed body",
			body:    `{"url":`,
			wantErr: pageview.ErrInvalidSnapshot,
		},
		{
			name:    "wrong types",
			body:    `{"screenWidth":"wide"}`,
			wantErr: pageview.ErrInvalidSnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/collect", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			r.Header.Set("User-Agent", testUA)
			r.Header.Set("Referer", "https://example.com/referer")
			r.Header.Set("Accept-Language", "en-US,en;q=0.9")

			got, err := pageview.SnapshotFromJSON(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStaticEnvironment(t *testing.T) {
	t.Parallel()

	s := pageview.Snapshot{URL: "https://example.com/", ScreenWidth: 10}
	var env pageview.Environment = pageview.StaticEnvironment(s)
	assert.Equal(t, s, env.Snapshot(context.Background()))
}
