package breach

import (
	"encoding/json"

	"github.com/rdillon73/ebreached/internal/model"
)

// lookupResponse is the JSON body of a successful BreachDirectory query.
//
// The documented shape is:
//
//	{
//	  "success": true,
//	  "found": 2,
//	  "result": [ { "email": ..., "password": ..., "sha1": ...,
//	                "hash": ..., "sources": [...] }, ... ]
//	}
//
// The API is loosely specified: success is sometimes omitted, found does
// not always match len(result), and record fields vary by breach source.
// We treat the records as pass-through data and only interpret the
// success/found pair to distinguish "clean" from "breached".
type lookupResponse struct {
	// Success is false when the term was not found in any breach.
	// A nil pointer means the field was absent, which we treat as success
	// since some responses omit it.
	Success *bool `json:"success"`

	// Found is the number of records the API claims to have.
	Found int `json:"found"`

	// Result holds the breach records.
	Result []model.BreachRecord `json:"result"`
}

// parseLookupResponse decodes a response body.
// Returns ErrMalformedResponse when the body is not valid JSON or not an
// object.
func parseLookupResponse(body []byte) (*lookupResponse, error) {
	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, ErrMalformedResponse
	}
	return &resp, nil
}

// breached reports whether the response carries breach records.
func (r *lookupResponse) breached() bool {
	if r.Success != nil && !*r.Success {
		return false
	}
	return len(r.Result) > 0
}
