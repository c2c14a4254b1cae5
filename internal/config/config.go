package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the BreachDirectory API's documented expectations
// where applicable.
const (
	// DefaultAPIHost is the RapidAPI host serving the BreachDirectory API.
	// The host doubles as the x-rapidapi-host header value required by
	// the RapidAPI gateway.
	DefaultAPIHost = "breachdirectory.p.rapidapi.com"

	// DefaultDelay is the pause between consecutive lookups.
	// The BreachDirectory free plan requires at least one second between
	// searches; this is a term of service, not a value we compute.
	// Paid plans can lower it via the --delay flag or the config file.
	DefaultDelay = 1 * time.Second

	// DefaultTimeout is the per-request HTTP timeout. Lookups hit a
	// clearnet API, so 30 seconds is generous; slow SOCKS5 proxies may
	// need more via --timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultOutputPrefix is the prefix of the timestamped result file.
	DefaultOutputPrefix = "breach_results"

	// DefaultUserAgent identifies ebreached in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows the API
	// operator to identify tool traffic in their logs.
	DefaultUserAgent = "ebreached/0.1 (+https://github.com/rdillon73/ebreached)"

	// AppName is the application name used for XDG directory paths.
	AppName = "ebreached"
)

// Config holds all configuration options for a check run.
// This struct is designed to be populated from CLI flags and the optional
// config file, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Email is a single address to check. Mutually exclusive with
	// EmailListPath; exactly one of the two must be set.
	Email string

	// EmailListPath is a file holding the addresses to check.
	// Accepted layouts: one address per line, comma-separated, or the
	// first row of a CSV with one address per cell.
	EmailListPath string

	// APIKey is the literal BreachDirectory API key. Mutually exclusive
	// with APIKeyFile; exactly one of the two must be set.
	APIKey string

	// APIKeyFile is a file holding the API key. Preferred over APIKey
	// because keys passed on the command line end up in shell history.
	APIKeyFile string

	// APIHost is the RapidAPI host to query.
	// Overridable for testing and for alternate API gateways.
	APIHost string

	// Delay is the pause inserted between consecutive lookups.
	// Zero disables the pause entirely (paid plans).
	Delay time.Duration

	// Timeout is the HTTP timeout applied to each lookup request.
	Timeout time.Duration

	// Proxy is an optional SOCKS5 proxy in "host:port" format.
	// When set, all API traffic is routed through it.
	Proxy string

	// UserAgent is the User-Agent header sent with lookup requests.
	UserAgent string

	// OutputPath is an explicit result file path. When empty, a
	// timestamped filename is generated from OutputPrefix so that prior
	// runs are never overwritten.
	OutputPath string

	// OutputPrefix is the prefix of the generated result filename.
	OutputPrefix string

	// JSONReport writes the results as a JSON run report instead of CSV.
	// JSON reports can be fed to the compare command later.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport writes the results as a Markdown report instead of CSV.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Quiet suppresses the banner and the progress bar.
	// Log output and the final summary are unaffected.
	Quiet bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .ebreached in the current
	// directory, the home directory, and the XDG config directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases; CLI flags and the config file override specific values.
func NewConfig() *Config {
	return &Config{
		APIHost:      DefaultAPIHost,
		Delay:        DefaultDelay,
		Timeout:      DefaultTimeout,
		OutputPrefix: DefaultOutputPrefix,
		UserAgent:    DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for ebreached.
// On Linux: ~/.config/ebreached
// On macOS: ~/Library/Application Support/ebreached
// On Windows: %APPDATA%\ebreached
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any network request.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Exactly one email source must be supplied
	if c.Email == "" && c.EmailListPath == "" {
		return ErrNoEmail
	}
	if c.Email != "" && c.EmailListPath != "" {
		return ErrConflictingEmailInputs
	}

	// Exactly one key source must be supplied
	if c.APIKey == "" && c.APIKeyFile == "" {
		return ErrNoAPIKey
	}
	if c.APIKey != "" && c.APIKeyFile != "" {
		return ErrConflictingKeyInputs
	}

	// Delay may be zero (paid plans) but never negative
	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	// Timeout must be positive; zero would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.APIHost == "" {
		return ErrNoAPIHost
	}

	return nil
}
