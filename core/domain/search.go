// ABOUTME: Search request/response domain models and the raw provider item
// ABOUTME: Defines structures exchanged between the orchestrator, fetcher and API layer

package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// SearchRequest describes one search execution: an ordered sequence of seed
// phrases, a date range, and a policy snapshot.
type SearchRequest struct {
	// Seeds are the user-supplied phrases, in the order they were given
	Seeds []string

	// Since is the lower bound of the date range
	Since time.Time

	// Until is the upper bound of the date range
	Until time.Time

	// Policy is the toggle snapshot for this execution
	Policy Policy
}

// Normalized returns a copy with seeds trimmed and empties dropped, and with
// the date range swapped when the caller supplied it reversed.
func (r SearchRequest) Normalized() SearchRequest {
	out := r
	out.Seeds = make([]string, 0, len(r.Seeds))
	for _, s := range r.Seeds {
		if s = strings.TrimSpace(s); s != "" {
			out.Seeds = append(out.Seeds, s)
		}
	}
	if out.Until.Before(out.Since) {
		out.Since, out.Until = out.Until, out.Since
	}
	return out
}

// SearchResult is the outcome of a search execution: the deduplicated match
// list plus the full diagnostics narrative.
type SearchResult struct {
	// Matches is the ordered, deduplicated list of accepted candidates
	Matches []Match

	// Diagnostics is the human-readable account of each stage's yield.
	// It is always present and never consumed programmatically.
	Diagnostics string
}

// PageRequest describes one page request against the provider.
type PageRequest struct {
	// Query is the outbound query string (possibly quoted)
	Query string

	// Since is the lower date bound
	Since time.Time

	// Until is the upper date bound, before any inclusivity adjustment
	Until time.Time

	// InclusiveTo advances the upper bound by one day on the wire
	InclusiveTo bool

	// Page is the 1-based page number
	Page int
}

// RawItem is a single element of the provider's items array. The provider
// intermittently returns objects and bare strings in the same array, so the
// payload stays untyped until normalization resolves the shape.
type RawItem struct {
	value interface{}
}

// UnmarshalJSON stores the decoded value without committing to a shape.
func (r *RawItem) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.value = v
	return nil
}

// Value returns the decoded payload: a map, a string, or anything else the
// provider happened to send.
func (r RawItem) Value() interface{} {
	return r.value
}

// ObjectItem builds an object-shaped RawItem. Used by callers assembling
// items outside of JSON decoding, mainly tests.
func ObjectItem(fields map[string]interface{}) RawItem {
	return RawItem{value: fields}
}

// StringItem builds a bare-string RawItem.
func StringItem(s string) RawItem {
	return RawItem{value: s}
}

// Page is one page of provider results with its envelope metadata.
type Page struct {
	// Items are the raw results, heterogeneous in shape
	Items []RawItem

	// Count is the provider-reported item count for this page, when present
	Count int

	// TotalCount is the provider-reported total across pages, when present
	TotalCount int
}
