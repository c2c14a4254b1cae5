// Package model defines the core data structures used throughout ebreached.
//
// This package contains the following main types:
//   - BreachRecord: A single credential exposure entry from the lookup API
//   - LookupResult: The outcome of checking one email address
//   - RunReport: The accumulated results of one run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (breach, report) need to use these types,
// so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON so that run reports can
// be written to disk and compared between runs.
package model
