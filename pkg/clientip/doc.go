// Package clientip resolves the originating client address of an HTTP
// request when the relay sits behind one or more reverse proxies.
//
// A Resolver checks its trusted headers in priority order and falls back to
// the TCP peer address. The default order is:
//
//  1. CF-Connecting-IP
//  2. X-Forwarded-For (first valid entry of the list)
//  3. X-Real-IP
//  4. RemoteAddr
//
// Headers are only trustworthy when a proxy you control sets them. A relay
// exposed directly to clients should use New(WithHeaders()) so only
// RemoteAddr is used.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/clientip"
//
//	res := clientip.New(clientip.WithHeaders("X-Forwarded-For"))
//	r.Use(res.Middleware)
//
//	// later, in a handler or key function
//	ip := clientip.FromContext(r.Context())
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// written with a request context carries client_ip.
//
// # Error Handling
//
// Resolution never fails. When no candidate parses the IP is "".
package clientip
