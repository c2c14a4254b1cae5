package model

import "time"

// LookupResult is the outcome of checking one email address.
type LookupResult struct {
	// Email is the queried address.
	Email string `json:"email"`

	// Status is the lookup outcome (breached, clean, or error).
	Status Status `json:"status"`

	// Records holds the breach records returned for the address.
	// Empty for clean and failed lookups.
	Records []BreachRecord `json:"records,omitempty"`

	// Error contains the failure message when Status is StatusError.
	Error string `json:"error,omitempty"`
}

// NewBreachedResult creates a result for an address with breach records.
// Every record is tagged with the queried address because the API omits
// the email field in some responses.
func NewBreachedResult(email string, records []BreachRecord) LookupResult {
	for i := range records {
		records[i].Email = email
	}
	return LookupResult{
		Email:   email,
		Status:  StatusBreached,
		Records: records,
	}
}

// NewCleanResult creates a result for an address with no known breaches.
func NewCleanResult(email string) LookupResult {
	return LookupResult{Email: email, Status: StatusClean}
}

// NewErrorResult creates a result for a failed lookup.
func NewErrorResult(email string, err error) LookupResult {
	return LookupResult{Email: email, Status: StatusError, Error: err.Error()}
}

// RunReport is the accumulated result of one run.
// It is kept in memory for the duration of the run and written once at
// the end; nothing persists beyond the output file.
type RunReport struct {
	// DateStarted is the timestamp when the run began.
	// It is also embedded in the default output filename.
	DateStarted time.Time `json:"date_started"`

	// Delay is the inter-request delay that was in effect.
	Delay time.Duration `json:"delay_ns"`

	// Results holds one entry per queried address, in query order.
	Results []LookupResult `json:"results"`
}

// NewRunReport creates an empty run report stamped with the current time.
func NewRunReport(delay time.Duration) *RunReport {
	return &RunReport{
		DateStarted: time.Now(),
		Delay:       delay,
		Results:     []LookupResult{},
	}
}

// Add appends a lookup result to the report.
func (r *RunReport) Add(result LookupResult) {
	r.Results = append(r.Results, result)
}

// BreachedCount returns the number of addresses with at least one record.
func (r *RunReport) BreachedCount() int { return r.countStatus(StatusBreached) }

// CleanCount returns the number of addresses with no known breach.
func (r *RunReport) CleanCount() int { return r.countStatus(StatusClean) }

// ErrorCount returns the number of addresses whose lookup failed.
func (r *RunReport) ErrorCount() int { return r.countStatus(StatusError) }

// RecordCount returns the total number of breach records across all results.
func (r *RunReport) RecordCount() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.Records)
	}
	return total
}

// EmailCount returns the number of addresses in the report.
func (r *RunReport) EmailCount() int { return len(r.Results) }

// Result returns the lookup result for the given address, if present.
func (r *RunReport) Result(email string) (LookupResult, bool) {
	for _, res := range r.Results {
		if res.Email == email {
			return res, true
		}
	}
	return LookupResult{}, false
}

func (r *RunReport) countStatus(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}
