package clientip

import "net/http"

// Middleware resolves the client IP and stores it in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

// Middleware is Resolver.Middleware with DefaultHeaders.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// KeyFunc returns the IP that Middleware stored for r.
// It fits ratelimiter.KeyFunc.
func KeyFunc(r *http.Request) string {
	return FromContext(r.Context())
}
