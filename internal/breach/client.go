package breach

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"

	"github.com/rdillon73/ebreached/internal/model"
)

// lookupPath is the request path of the BreachDirectory lookup endpoint.
// The API exposes a single endpoint at the gateway root; the operation is
// selected by the func query parameter.
const lookupPath = "/"

// Client queries the BreachDirectory breach-lookup API.
//
// Requests are paced by a token-bucket limiter with burst 1 so that
// consecutive lookups are separated by the configured delay. The first
// request of a run goes out immediately. No retries are attempted: the
// free plan's quota is small enough that a blind retry can burn a whole
// month's allowance on a transient failure.
type Client struct {
	rest    *resty.Client
	limiter *rate.Limiter
}

// settings holds the configurable pieces of a Client.
type settings struct {
	host      string
	timeout   time.Duration
	delay     time.Duration
	userAgent string
	proxyAddr string
}

// Option configures a Client.
// This follows the functional options pattern for clean API design.
type Option func(*settings)

// WithHost sets the RapidAPI host to query.
// The host is also sent as the x-rapidapi-host header, which the RapidAPI
// gateway requires.
func WithHost(host string) Option {
	return func(s *settings) {
		s.host = host
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithDelay sets the minimum interval between consecutive lookups.
// Zero disables pacing entirely.
func WithDelay(delay time.Duration) Option {
	return func(s *settings) {
		s.delay = delay
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// WithProxy routes all API traffic through a SOCKS5 proxy at the given
// "host:port" address. Useful for analysts who do not want lookup traffic
// to originate from their own network.
func WithProxy(address string) Option {
	return func(s *settings) {
		s.proxyAddr = address
	}
}

// NewClient creates a breach-lookup client for the given API key.
//
// Design decision: the constructor does not touch the network. A wrong
// key or unreachable proxy surfaces on the first Lookup, where it is
// handled by the same per-email error path as every other failure.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	s := &settings{
		timeout: 30 * time.Second,
		delay:   time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.host == "" {
		return nil, fmt.Errorf("no API host configured")
	}

	rest := resty.New().
		SetBaseURL("https://" + s.host).
		SetTimeout(s.timeout).
		SetHeader("x-rapidapi-host", s.host).
		SetHeader("x-rapidapi-key", apiKey)
	if s.userAgent != "" {
		rest.SetHeader("User-Agent", s.userAgent)
	}

	if s.proxyAddr != "" {
		if !isValidProxyAddress(s.proxyAddr) {
			return nil, ErrInvalidProxyAddress
		}

		// nil auth because local SOCKS5 proxies typically run without it
		dialer, err := proxy.SOCKS5("tcp", s.proxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		rest.SetTransport(&http.Transport{
			DialContext: func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		})
	}

	// rate.Every(0) is rate.Inf, which disables pacing
	return &Client{
		rest:    rest,
		limiter: rate.NewLimiter(rate.Every(s.delay), 1),
	}, nil
}

// HTTPClient returns the underlying net/http client used for lookups,
// so callers can install transport-level interceptors.
func (c *Client) HTTPClient() *http.Client {
	return c.rest.GetClient()
}

// Lookup queries the API for breach records covering the given address.
//
// Return values:
//   - records, nil: the address appears in the returned breaches
//   - nil, nil: the API knows the address and reports no breach
//   - nil, err: the lookup failed and the address must be skipped,
//     not reported clean
//
// Lookup blocks until the pacing limiter grants a slot or ctx is
// cancelled.
func (c *Client) Lookup(ctx context.Context, email string) ([]model.BreachRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"func": "auto",
			"term": email,
		}).
		Get(lookupPath)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		// fall through to body parsing
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, ErrInvalidKey
	case code == http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	case code == http.StatusNotFound:
		return nil, ErrEndpointNotFound
	case code >= 500:
		return nil, ErrServerFailure
	default:
		return nil, fmt.Errorf("unexpected status code %d", code)
	}

	parsed, err := parseLookupResponse(resp.Body())
	if err != nil {
		return nil, err
	}

	if !parsed.breached() {
		return nil, nil
	}
	return parsed.Result, nil
}

// isValidProxyAddress checks if the address is in valid "host:port" format.
// We use a simple check rather than a full URL parser because the format
// is very specific (no scheme, no path, just host and port).
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return portNum >= 1 && portNum <= 65535
}
