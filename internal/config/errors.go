package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoEmail is returned when neither a single email nor an email
	// list file is specified. One of the two is required.
	ErrNoEmail = errors.New("no email specified: use --email or --list")

	// ErrConflictingEmailInputs is returned when both a single email and
	// an email list file are specified. The two are mutually exclusive.
	ErrConflictingEmailInputs = errors.New("conflicting email inputs: --email and --list cannot be used together")

	// ErrNoAPIKey is returned when neither a literal API key nor a key
	// file is specified. One of the two is required.
	ErrNoAPIKey = errors.New("no API key specified: use --api-key or --key-file")

	// ErrConflictingKeyInputs is returned when both a literal API key and
	// a key file are specified. The two are mutually exclusive.
	ErrConflictingKeyInputs = errors.New("conflicting key inputs: --api-key and --key-file cannot be used together")

	// ErrInvalidDelay is returned when the inter-request delay is negative.
	// Use 0 to disable the delay on paid API plans.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoAPIHost is returned when the API host has been cleared, which
	// can only happen through a broken config file.
	ErrNoAPIHost = errors.New("no API host specified")
)
