// Package log provides secure logging functionality with automatic
// sanitization of sensitive information, built on top of the standard
// slog package.
//
// ebreached deals with two kinds of secrets: the API key that
// authenticates every lookup, and the leaked passwords and hashes the
// API returns. The latter are written to the result file on purpose,
// but neither may leak into log output that could be shared or stored.
//
// The SecureHandler masks:
//   - API keys and authorization headers (by attribute key and by value shape)
//   - Password, hash, and token attributes from breach records
//   - Bearer/Basic/JWT-shaped string values regardless of key name
//
// Even in verbose mode, sensitive values are masked.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Warn("lookup failed",
//	    "email", email,
//	    "x-rapidapi-key", key, // masked in output
//	)
package log
