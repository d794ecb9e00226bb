// ABOUTME: Post and Match domain models for the search pipeline
// ABOUTME: Defines the uniform record produced by normalization and the accepted match

package domain

// Post is the uniform record produced from a heterogeneous provider item.
// It is created, consumed and discarded within a single search execution.
type Post struct {
	// Body is the newline-join of the item's non-empty textual fields
	Body string

	// Views is the parsed view count (0 when the provider sent nothing usable)
	Views int

	// Link is the first non-empty link-like field of the raw item
	Link string

	// Channel is the publishing channel's title when the provider included it
	Channel string
}

// MatchReason tags why a candidate was accepted.
type MatchReason string

const (
	// ReasonStrict means the seed occurred in the body at a word boundary
	ReasonStrict MatchReason = "strict"

	// ReasonFuzzy means the token-overlap ratio met the fuzzy threshold
	ReasonFuzzy MatchReason = "fuzzy"

	// ReasonTrusted means the item had no extractable text and was accepted
	// on the strength of the provider's own query match
	ReasonTrusted MatchReason = "trusted"
)

// Match is a Post accepted by the matcher, tagged with the seed that found it.
// Every Match in a final result carries a non-empty Seed.
type Match struct {
	Post

	// Seed is the original (unquoted) phrase that produced the hit
	Seed string

	// Reason records which matching mode accepted the candidate
	Reason MatchReason
}
