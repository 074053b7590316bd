package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Header names checked by the default resolver, highest priority first.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
)

// DefaultHeaders is the lookup order used by GetIP.
var DefaultHeaders = []string{HeaderCFConnectingIP, HeaderForwardedFor, HeaderRealIP}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the trusted proxy headers. Order is priority.
// Passing no names makes the resolver use RemoteAddr only, which is the
// right choice when the relay is reachable without a proxy in front.
func WithHeaders(names ...string) Option {
	return func(r *Resolver) {
		r.headers = make([]string, 0, len(names))
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				r.headers = append(r.headers, http.CanonicalHeaderKey(name))
			}
		}
	}
}

// Resolver picks the originating client address out of a request.
// It is immutable after New and safe for concurrent use.
type Resolver struct {
	headers []string
}

// New creates a Resolver trusting DefaultHeaders unless WithHeaders is given.
func New(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// IP returns the first valid address found in the trusted headers, then
// RemoteAddr. A comma separated header value yields its first valid entry.
// The result is empty when nothing parses.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves the client address with DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// parseIP validates and normalizes an address. IPv4-mapped IPv6 addresses
// are unmapped; zoned addresses are rejected.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return ""
	}
	return addr.Unmap().String()
}
