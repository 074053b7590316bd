// Package requestid attaches a correlation ID to every relay request.
//
// Middleware reuses a well-formed X-Request-ID sent by the caller (letters,
// digits, "-" and "_", at most 128 bytes) and otherwise generates a UUIDv4.
// The ID is stored in the request context and echoed in the response header.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/requestid"
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// # Error Handling
//
// The package does not return errors. Invalid IDs are silently replaced.
package requestid
