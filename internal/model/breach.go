package model

import (
	"encoding/json"
	"strings"
)

// BreachRecord is a single credential exposure entry returned by the
// breach-lookup API for a queried email address.
//
// Design decision: the API response shape is loosely structured and varies
// between breach sources (some entries carry a plaintext password, some only
// hashes, some both). We keep the known fields and pass their values through
// verbatim rather than normalizing them into a stricter schema.
type BreachRecord struct {
	// Email is the address the record was returned for.
	// The API omits it in some responses, so the accumulation stage
	// tags every record with the queried address.
	Email string `json:"email,omitempty"`

	// Password is the leaked plaintext password, if the breach exposed one.
	Password string `json:"password,omitempty"`

	// SHA1 is the SHA-1 digest of the leaked password, if available.
	SHA1 string `json:"sha1,omitempty"`

	// Hash is any other password hash exposed by the breach
	// (the API does not document the algorithm).
	Hash string `json:"hash,omitempty"`

	// Sources lists the breach corpora the record was found in.
	Sources StringList `json:"sources,omitempty"`
}

// HasCredential reports whether the record exposes any password material.
func (r *BreachRecord) HasCredential() bool {
	return r.Password != "" || r.SHA1 != "" || r.Hash != ""
}

// StringList is a []string that tolerates the API returning a single
// string, an array of strings, or null for the same field.
type StringList []string

// UnmarshalJSON accepts "source", ["a", "b"], or null.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = []string{single}
	return nil
}

// String joins the list with ", " for flat output formats such as CSV.
func (s StringList) String() string {
	return strings.Join(s, ", ")
}
