// ABOUTME: Request DTOs for the post search endpoint
// ABOUTME: Provides validation and policy-override handling for incoming requests

package requests

import "organics-app-api/core/domain"

// SearchRequest represents the request body for a post search
type SearchRequest struct {
	// Seeds is the ordered list of phrases to search for
	Seeds []string `json:"seeds" minItems:"1" maxItems:"50" doc:"Phrases to search for, in priority order"`

	// Since is the lower bound of the date range
	Since string `json:"since" required:"true" format:"date" doc:"Start of the date range (YYYY-MM-DD)"`

	// Until is the upper bound of the date range
	Until string `json:"until" required:"true" format:"date" doc:"End of the date range (YYYY-MM-DD)"`

	// Options overrides individual policy toggles for this request
	Options *SearchOptions `json:"options,omitempty" doc:"Optional per-request policy overrides"`
}

// SearchOptions carries optional per-request policy overrides. Absent fields
// fall back to the server's configured defaults.
type SearchOptions struct {
	UseQuotes             *bool    `json:"use_quotes,omitempty" doc:"Wrap each phrase in double quotes for the upstream query"`
	RequireExact          *bool    `json:"require_exact,omitempty" doc:"Require strict word-boundary matching"`
	TrustQueryOnEmptyBody *bool    `json:"trust_query_on_empty_body,omitempty" doc:"Accept provider-matched items with no extractable text"`
	MinViews              *int     `json:"min_views,omitempty" minimum:"0" doc:"Drop candidates below this view count"`
	MaxPages              *int     `json:"max_pages,omitempty" minimum:"1" maximum:"20" doc:"Pagination ceiling per phrase"`
	DateToInclusive       *bool    `json:"date_to_inclusive,omitempty" doc:"Treat the upper date bound as inclusive"`
	FuzzyThreshold        *float64 `json:"fuzzy_threshold,omitempty" minimum:"0" maximum:"1" doc:"Token-overlap acceptance ratio for fuzzy matching"`
}

// ResolvePolicy merges the request's overrides onto the supplied defaults.
func (r *SearchRequest) ResolvePolicy(defaults domain.Policy) domain.Policy {
	policy := defaults
	if r.Options == nil {
		return policy
	}
	if r.Options.UseQuotes != nil {
		policy.UseQuotes = *r.Options.UseQuotes
	}
	if r.Options.RequireExact != nil {
		policy.RequireExact = *r.Options.RequireExact
	}
	if r.Options.TrustQueryOnEmptyBody != nil {
		policy.TrustQueryOnEmptyBody = *r.Options.TrustQueryOnEmptyBody
	}
	if r.Options.MinViews != nil {
		policy.MinViews = *r.Options.MinViews
	}
	if r.Options.MaxPages != nil {
		policy.MaxPages = *r.Options.MaxPages
	}
	if r.Options.DateToInclusive != nil {
		policy.DateToInclusive = *r.Options.DateToInclusive
	}
	if r.Options.FuzzyThreshold != nil {
		policy.FuzzyThreshold = *r.Options.FuzzyThreshold
	}
	return policy
}
