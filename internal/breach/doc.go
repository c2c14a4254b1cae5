// Package breach implements the client for the BreachDirectory
// breach-lookup API served through the RapidAPI gateway.
//
// The API is a single GET endpoint authenticated by the x-rapidapi-key
// header. The client paces consecutive requests with a fixed delay (the
// free plan's terms) and maps the gateway's status codes onto sentinel
// errors the caller can log per email. There is deliberately no retry
// logic and no response caching.
package breach
