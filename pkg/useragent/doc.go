// Package useragent provides a small, heuristic classifier for HTTP
// User-Agent strings.
//
// It reports four values:
//   - Operating system – Windows, macOS, Android, iOS, Linux or Unknown
//   - OS version – digits taken from the OS token ("10.0", "10.15.7", …)
//   - Browser – HeadlessChrome, Chrome, Safari, Firefox, Edge, Opera or Unknown
//   - Browser version – digits taken from the browser token
//
// It is not a user-agent database. Classification is two ordered rule chains
// evaluated independently of each other; in each chain the first rule whose
// keywords match wins. Matching is case-sensitive.
//
// # Rule chains
//
// OS chain:
//
//	"Windows NT"     → Windows  (version after "Windows NT ")
//	"Mac OS X"       → macOS    (version after "Mac OS X ", "_" → ".")
//	"Android"        → Android  (version after "Android ")
//	"iPhone OS"      → iOS      (version after "iPhone OS ", "_" → ".")
//	"iPad; CPU OS"   → iOS      (version after "CPU OS ", "_" → ".")
//	"Linux"          → Linux    (text after "Linux " up to ";" or ")")
//
// Browser chain:
//
//	"HeadlessChrome/"                     → HeadlessChrome
//	"Chrome/", not "Edge/", not "OPR/"    → Chrome
//	"Safari/", not "Chrome/"              → Safari (version from "Version/")
//	"Firefox/"                            → Firefox
//	"Edg/"                                → Edge
//	"OPR/"                                → Opera
//
// With WithEdgeChromium the Chrome rule also excludes "Edg/" and the Edge rule
// accepts both "Edg/" and "Edge/". The order of the chain never changes.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/useragent"
//
//	res := useragent.Classify(r.UserAgent())
//	log.Printf("client=%s", res)
//
//	c := useragent.New(useragent.WithEdgeChromium())
//	res = c.Classify(ua)
//
// # Error Handling
//
// There are no errors. Empty or malformed input produces
// Result{OS: "Unknown", Browser: "Unknown"} with empty versions.
//
// Classifiers are immutable after New and safe for concurrent use.
package useragent
