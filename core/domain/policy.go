// ABOUTME: Policy defines the named toggles that control pipeline behavior
// ABOUTME: Every behavioral variance routes through this surface, never through code forks

package domain

import "fmt"

// Policy is the fixed set of named toggles controlling a search execution.
// A snapshot travels with each SearchRequest so concurrent searches cannot
// observe each other's settings.
type Policy struct {
	// UseQuotes wraps each seed in double quotes for the upstream query
	UseQuotes bool

	// RequireExact selects strict boundary matching instead of fuzzy matching
	RequireExact bool

	// TrustQueryOnEmptyBody accepts provider-matched items that carry no
	// extractable text (media-only posts)
	TrustQueryOnEmptyBody bool

	// MinViews drops candidates below this view count (0 disables the filter)
	MinViews int

	// MaxPages is the pagination ceiling per seed
	MaxPages int

	// DateToInclusive advances date_to by one day so the upper bound is
	// inclusive against the provider's exclusive-upper-bound convention
	DateToInclusive bool

	// FuzzyThreshold is the token-overlap acceptance ratio for fuzzy mode
	FuzzyThreshold float64
}

// DefaultPolicy returns the policy defaults matching the provider integration.
func DefaultPolicy() Policy {
	return Policy{
		UseQuotes:             true,
		RequireExact:          true,
		TrustQueryOnEmptyBody: true,
		MinViews:              0,
		MaxPages:              3,
		DateToInclusive:       true,
		FuzzyThreshold:        0.6,
	}
}

// Summary returns a one-line human-readable description of the policy,
// used as the first diagnostics line.
func (p Policy) Summary() string {
	mode := "fuzzy"
	if p.RequireExact {
		mode = "exact"
	}
	return fmt.Sprintf(
		"policy: quotes=%s match=%s trust_empty=%s min_views=%d max_pages=%d date_to_inclusive=%s fuzzy_threshold=%.2f",
		onOff(p.UseQuotes), mode, onOff(p.TrustQueryOnEmptyBody),
		p.MinViews, p.MaxPages, onOff(p.DateToInclusive), p.FuzzyThreshold,
	)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
