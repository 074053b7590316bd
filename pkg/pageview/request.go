package pageview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/text/language"
)

// Query parameters read by RequestEnvironment.
const (
	ParamURL            = "url"
	ParamReferrer       = "ref"
	ParamTitle          = "title"
	ParamLanguage       = "lang"
	ParamScreenWidth    = "sw"
	ParamScreenHeight   = "sh"
	ParamViewportWidth  = "vw"
	ParamViewportHeight = "vh"
)

// RequestEnvironment builds a Snapshot from an inbound beacon hit.
// Query parameters take precedence. Missing values fall back to request headers:
// Referer for the page URL, User-Agent, and the preferred Accept-Language tag.
type RequestEnvironment struct {
	r *http.Request
}

// NewRequestEnvironment wraps r. The request must not be nil.
func NewRequestEnvironment(r *http.Request) RequestEnvironment {
	return RequestEnvironment{r: r}
}

// Snapshot implements Environment.
func (e RequestEnvironment) Snapshot(context.Context) Snapshot {
	q := e.r.URL.Query()
	s := Snapshot{
		URL:            q.Get(ParamURL),
		Referrer:       q.Get(ParamReferrer),
		Title:          q.Get(ParamTitle),
		Language:       q.Get(ParamLanguage),
		ScreenWidth:    atoi(q.Get(ParamScreenWidth)),
		ScreenHeight:   atoi(q.Get(ParamScreenHeight)),
		ViewportWidth:  atoi(q.Get(ParamViewportWidth)),
		ViewportHeight: atoi(q.Get(ParamViewportHeight)),
	}
	return WithRequestDefaults(s, e.r)
}

// SnapshotFromJSON decodes a Snapshot from the request body and fills the
// gaps from request headers. An empty body yields a headers-only Snapshot.
// The caller is responsible for limiting the body size.
func SnapshotFromJSON(r *http.Request) (Snapshot, error) {
	var s Snapshot
	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(&s)
		if err != nil && !errors.Is(err, io.EOF) {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	return WithRequestDefaults(s, r), nil
}

// WithRequestDefaults fills empty URL, UserAgent and Language from r's headers.
func WithRequestDefaults(s Snapshot, r *http.Request) Snapshot {
	if s.URL == "" {
		s.URL = r.Referer()
	}
	if s.UserAgent == "" {
		s.UserAgent = r.UserAgent()
	}
	if s.Language == "" {
		s.Language = preferredLanguage(r.Header.Get("Accept-Language"))
	}
	return s
}

// preferredLanguage returns the highest-weighted tag of an Accept-Language header.
func preferredLanguage(header string) string {
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	if tags[0] == language.Und {
		return ""
	}
	return tags[0].String()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
