// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once per process,
//     if present. Extra files can be requested per call with WithEnvFiles.
//   - Struct fields are filled from `env` / `envDefault` tags.
//   - A struct whose pointer implements Validator is validated after parsing,
//     so `config.Load(&pageviewCfg)` fails fast on a missing token.
//
// # Usage
//
//	import "github.com/dmitrymomot/beacon/pkg/config"
//
//	var cfg pageview.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Tests can bypass the process environment entirely.
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//		"BEACON_TABLE_NAME": "pageviews",
//		"BEACON_TOKEN":      "p.123",
//	}))
//
// # Error Handling
//
// Errors are joined with a package sentinel and can be matched with errors.Is:
// ErrNilPointer, ErrLoadingEnvFile, ErrParsingConfig and ErrValidation.
package config
