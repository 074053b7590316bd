package pageview_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/pageview"
)

func TestDimension_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dim      pageview.Dimension
		expected string
	}{
		{"pixels", pageview.Pixels(1920), `1920`},
		{"placeholder", pageview.Missing(pageview.NoScreenWidth), `"no screen width"`},
		{"null", pageview.Dimension{}, `null`},
		{"negative is null", pageview.Dimension{Value: -5}, `null`},
		{"negative with placeholder", pageview.Dimension{Value: -5, Placeholder: "none"}, `"none"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(tt.dim)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(b))
		})
	}
}

func TestDimension_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected pageview.Dimension
		wantErr  bool
	}{
		{"number", `1080`, pageview.Pixels(1080), false},
		{"float number", `1080.0`, pageview.Pixels(1080), false},
		{"placeholder", `"no viewport height"`, pageview.Missing(pageview.NoViewportHeight), false},
		{"null", `null`, pageview.Dimension{}, false},
		{"bool", `true`, pageview.Dimension{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d pageview.Dimension
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDimension_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "390", pageview.Pixels(390).String())
	assert.Equal(t, "no screen height", pageview.Missing(pageview.NoScreenHeight).String())
	assert.Equal(t, "null", pageview.Dimension{}.String())
	assert.True(t, pageview.Dimension{}.IsMissing())
	assert.False(t, pageview.Pixels(1).IsMissing())
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	snapshots := map[string]pageview.Snapshot{
		"full": {
			URL: "https://example.com/a", Referrer: "https://google.com/", Title: "Hello",
			UserAgent: testUA, Language: "en-US",
			ScreenWidth: 1920, ScreenHeight: 1080, ViewportWidth: 1280, ViewportHeight: 720,
		},
		"empty": {},
		"partial": {URL: "https://example.com/", ScreenWidth: 390, ViewportHeight: -1},
	}

	collectors := map[string]*pageview.Collector{
		"placeholder":    pageview.NewCollector(nil, pageview.WithClock(fixedClock)),
		"null":           pageview.NewCollector(nil, pageview.WithClock(fixedClock), pageview.WithFallback(pageview.FallbackNull)),
		"unclassified":   pageview.NewCollector(nil, pageview.WithClock(fixedClock), pageview.WithoutClassification()),
		"null no UA cls": pageview.NewCollector(nil, pageview.WithClock(fixedClock), pageview.WithFallback(pageview.FallbackNull), pageview.WithoutClassification()),
	}

	for cname, c := range collectors {
		for sname, s := range snapshots {
			t.Run(cname+"/"+sname, func(t *testing.T) {
				t.Parallel()
				ev := c.Build(s)

				b, err := json.Marshal(ev)
				require.NoError(t, err)

				var got pageview.Event
				require.NoError(t, json.Unmarshal(b, &got))
				assert.Equal(t, ev, got)
			})
		}
	}
}

func TestEvent_JSONKeys(t *testing.T) {
	t.Parallel()

	requiredKeys := []string{
		"url", "referrer", "title", "userAgent", "language",
		"screenWidth", "screenHeight", "viewportWidth", "viewportHeight", "timestamp",
	}
	uaKeys := []string{"os", "osVersion", "browser", "browserVersion"}

	decode := func(t *testing.T, ev pageview.Event) map[string]any {
		t.Helper()
		b, err := json.Marshal(ev)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		return m
	}

	t.Run("null policy keeps keys", func(t *testing.T) {
		t.Parallel()
		c := pageview.NewCollector(nil, pageview.WithClock(fixedClock), pageview.WithFallback(pageview.FallbackNull))
		m := decode(t, c.Build(pageview.Snapshot{}))

		for _, k := range requiredKeys {
			v, ok := m[k]
			assert.True(t, ok, "missing key %s", k)
			if k != "timestamp" {
				assert.Nil(t, v, "key %s", k)
			}
		}
		for _, k := range uaKeys {
			assert.Contains(t, m, k)
		}
		assert.Equal(t, testTimestamp, m["timestamp"])
	})

	t.Run("numbers are numbers", func(t *testing.T) {
		t.Parallel()
		c := pageview.NewCollector(nil, pageview.WithClock(fixedClock))
		m := decode(t, c.Build(pageview.Snapshot{ScreenWidth: 1920}))
		assert.Equal(t, float64(1920), m["screenWidth"])
		assert.Equal(t, pageview.NoScreenHeight, m["screenHeight"])
	})

	t.Run("disabled classification omits UA keys", func(t *testing.T) {
		t.Parallel()
		c := pageview.NewCollector(nil, pageview.WithClock(fixedClock), pageview.WithoutClassification())
		m := decode(t, c.Build(pageview.Snapshot{UserAgent: testUA}))
		for _, k := range requiredKeys {
			assert.Contains(t, m, k)
		}
		for _, k := range uaKeys {
			assert.NotContains(t, m, k)
		}
	})
}
