// ABOUTME: Response DTOs for the post search endpoint
// ABOUTME: Defines the wire shape of matches and diagnostics returned to clients

package responses

// SearchResponse represents the result of a post search
type SearchResponse struct {
	// Matches is the ordered, deduplicated list of accepted posts
	Matches []MatchResponse `json:"matches"`

	// TotalMatches is the number of matches after deduplication
	TotalMatches int `json:"total_matches" doc:"Number of matches after deduplication"`

	// Diagnostics is the per-phrase account of each pipeline stage's yield
	Diagnostics string `json:"diagnostics" doc:"Human-readable per-phrase pipeline report"`
}

// MatchResponse represents a single accepted post
type MatchResponse struct {
	// Seed is the original phrase that produced the hit
	Seed string `json:"seed"`

	// Body is the post's extracted text
	Body string `json:"body"`

	// Views is the post's view count
	Views int `json:"views"`

	// Link is the post's permalink, when the provider supplied one
	Link string `json:"link,omitempty"`

	// Channel is the publishing channel's title, when known
	Channel string `json:"channel,omitempty"`

	// Reason records which matching mode accepted the post
	Reason string `json:"reason" enum:"strict,fuzzy,trusted"`
}
