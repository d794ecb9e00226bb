// ABOUTME: Deduplicator removes records that refer to the same underlying post
// ABOUTME: First occurrence wins by seed order, then discovery order within a seed

package search

import "organics-app-api/core/domain"

// bodyKeyLength bounds the body-derived dedup key in runes
const bodyKeyLength = 80

// dedupKey identifies two candidates as the same underlying post: the link
// when present, else a bounded prefix of the normalized body. Keys are
// prefixed by kind so a link can never collide with a body prefix.
func dedupKey(m domain.Match) string {
	if m.Link != "" {
		return "link:" + m.Link
	}
	body := []rune(normalizeText(m.Body))
	if len(body) > bodyKeyLength {
		body = body[:bodyKeyLength]
	}
	return "body:" + string(body)
}

// dedupMatches keeps the first occurrence of each dedup key. The input is
// already ordered by (seed order, discovery order within seed), so a post
// matching two phrases surfaces once, tagged with the first seed that found
// it. Runs once over the fully aggregated cross-seed list.
func dedupMatches(matches []domain.Match) []domain.Match {
	seen := make(map[string]struct{}, len(matches))
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		key := dedupKey(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}
