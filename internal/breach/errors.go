package breach

import "errors"

// Lookup errors.
// These errors are returned by Client.Lookup and map the API's status
// codes onto the failure modes an operator can actually act on.
//
// Design decision: We define specific error types rather than wrapping all
// errors generically. Per-email failures are non-fatal, so the caller only
// logs them, but the messages must tell the operator whether the problem
// is their key, their quota, or the service.
var (
	// ErrInvalidKey is returned on HTTP 401/403. The API key is wrong,
	// expired, or not subscribed to the BreachDirectory API.
	ErrInvalidKey = errors.New("API key rejected (invalid key or missing subscription)")

	// ErrQuotaExceeded is returned on HTTP 429. The free plan allows a
	// small number of searches per month; the lookup quota is exhausted
	// or requests are arriving faster than the plan permits.
	ErrQuotaExceeded = errors.New("request quota exceeded or rate limit hit")

	// ErrEndpointNotFound is returned on HTTP 404, which indicates the
	// gateway no longer serves the expected endpoint.
	ErrEndpointNotFound = errors.New("breach lookup endpoint not found")

	// ErrServerFailure is returned on HTTP 5xx. BreachDirectory also uses
	// 500 when it has no records for a term, so the address is skipped
	// rather than reported clean.
	ErrServerFailure = errors.New("breach lookup service error")

	// ErrMalformedResponse is returned when the response body is not the
	// JSON shape the API documents.
	ErrMalformedResponse = errors.New("malformed API response")

	// ErrInvalidProxyAddress is returned when the proxy address format is
	// invalid. Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
