// ABOUTME: Phrase matcher decides whether a seed phrase is genuinely present in a post body
// ABOUTME: Supports strict boundary matching and fuzzy token-overlap matching

package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"organics-app-api/core/domain"
)

// normalizeText applies Unicode canonical normalization, case folding, and
// whitespace-run collapsing so seeds compare against bodies on equal footing.
func normalizeText(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// matchPhrase decides whether the seed is genuinely present in the body under
// the given policy. Both arguments are raw text; normalization happens here.
// The returned reason tags which mode accepted the candidate.
func matchPhrase(seed, body string, p domain.Policy) (bool, domain.MatchReason) {
	normBody := normalizeText(body)
	if normBody == "" {
		// Media-only post: no text to verify locally. The trust-query policy
		// decides whether the provider's own query match is enough.
		if p.TrustQueryOnEmptyBody {
			return true, domain.ReasonTrusted
		}
		return false, ""
	}

	normSeed := normalizeText(seed)
	if containsBoundary(normSeed, normBody) {
		return true, domain.ReasonStrict
	}

	if p.RequireExact {
		return false, ""
	}

	if tokenOverlap(normSeed, normBody) >= p.FuzzyThreshold {
		return true, domain.ReasonFuzzy
	}

	return false, ""
}

// containsBoundary reports whether needle occurs in haystack as a contiguous
// substring bounded on both sides by a non-alphanumeric rune or the string
// edge, so a seed never matches inside a longer word.
func containsBoundary(needle, haystack string) bool {
	if needle == "" || haystack == "" {
		return false
	}

	for start := 0; start <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		if boundedAt(haystack, idx, len(needle)) {
			return true
		}
		start = idx + 1
	}

	return false
}

// boundedAt checks the runes flanking haystack[idx:idx+length]
func boundedAt(haystack string, idx, length int) bool {
	if idx > 0 {
		before, _ := utf8.DecodeLastRuneInString(haystack[:idx])
		if isWordRune(before) {
			return false
		}
	}
	if end := idx + length; end < len(haystack) {
		after, _ := utf8.DecodeRuneInString(haystack[end:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}

// isWordRune treats letters and digits of any script (Latin, Cyrillic, ...)
// as word characters
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenOverlap returns the ratio of seed tokens also present in the body's
// token set, over the seed token count.
func tokenOverlap(seed, body string) float64 {
	seedTokens := strings.Fields(seed)
	if len(seedTokens) == 0 {
		return 0
	}

	bodyTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(body) {
		bodyTokens[tok] = struct{}{}
	}

	hits := 0
	for _, tok := range seedTokens {
		if _, ok := bodyTokens[tok]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(seedTokens))
}
