package pageview

import "context"

// Snapshot is the raw environment observed for one pageview.
// Zero values mean "not available".
type Snapshot struct {
	URL            string `json:"url,omitempty"`
	Referrer       string `json:"referrer,omitempty"`
	Title          string `json:"title,omitempty"`
	UserAgent      string `json:"userAgent,omitempty"`
	Language       string `json:"language,omitempty"`
	ScreenWidth    int    `json:"screenWidth,omitempty"`
	ScreenHeight   int    `json:"screenHeight,omitempty"`
	ViewportWidth  int    `json:"viewportWidth,omitempty"`
	ViewportHeight int    `json:"viewportHeight,omitempty"`
}

// Environment supplies a Snapshot on demand.
type Environment interface {
	Snapshot(ctx context.Context) Snapshot
}

// EnvironmentFunc adapts a function to the Environment interface.
type EnvironmentFunc func(ctx context.Context) Snapshot

// Snapshot calls f(ctx).
func (f EnvironmentFunc) Snapshot(ctx context.Context) Snapshot {
	return f(ctx)
}

// StaticEnvironment always returns the same Snapshot.
type StaticEnvironment Snapshot

// Snapshot returns the stored value.
func (s StaticEnvironment) Snapshot(context.Context) Snapshot {
	return Snapshot(s)
}
