package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/beacon/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

// TestParseOSOrder pins the order of the OS chain for user agents carrying several OS tokens
func TestParseOSOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		ua              string
		expectedName    string
		expectedVersion string
	}{
		{
			name:            "Windows beats Linux",
			ua:              "Windows NT 6.1; Linux x86_64",
			expectedName:    useragent.OSWindows,
			expectedVersion: "6.1",
		},
		{
			name:            "Android beats Linux",
			ua:              "Mozilla/5.0 (Linux; Android 9; KFMAWI)",
			expectedName:    useragent.OSAndroid,
			expectedVersion: "9",
		},
		{
			name:            "Mac OS X beats iPad",
			ua:              "Mozilla/5.0 (iPad; CPU OS 13_2 like Mac OS X)",
			expectedName:    useragent.OSMacOS,
			expectedVersion: "",
		},
		{
			name:            "Linux token up to closing paren",
			ua:              "Mozilla/5.0 (X11; Linux i686)",
			expectedName:    useragent.OSLinux,
			expectedVersion: "i686",
		},
		{
			name:            "lowercase tokens do not match",
			ua:              "mozilla/5.0 (windows nt 10.0)",
			expectedName:    useragent.OSUnknown,
			expectedVersion: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			name, version := useragent.ParseOS(tc.ua)
			assert.Equal(t, tc.expectedName, name)
			assert.Equal(t, tc.expectedVersion, version)
		})
	}
}
