package model

// Status represents the outcome of a single email lookup.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides the
// human-readable form used in reports, and MarshalJSON keeps the JSON
// run report stable across releases.
type Status int

const (
	// StatusClean indicates the API reported no breach for the address.
	StatusClean Status = iota

	// StatusBreached indicates one or more breach records were returned.
	StatusBreached

	// StatusError indicates the lookup failed (network error, bad response,
	// malformed JSON). The address was skipped, not proven clean.
	StatusError
)

// String returns a human-readable representation of the lookup status.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "not breached"
	case StatusBreached:
		return "breached"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the status as its string form so that run
// reports stay readable and diffable.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses the string form written by MarshalJSON.
// Unknown values map to StatusError so that reports written by newer
// versions degrade safely instead of silently counting as clean.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"not breached"`:
		*s = StatusClean
	case `"breached"`:
		*s = StatusBreached
	default:
		*s = StatusError
	}
	return nil
}
