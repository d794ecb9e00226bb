// ABOUTME: Seed and item normalization for the search pipeline
// ABOUTME: Coerces heterogeneous raw provider items into uniform Post records

package search

import (
	"strconv"
	"strings"

	"organics-app-api/core/domain"
)

// quoteSeed wraps the seed in double quotes for the upstream query when the
// quoting policy is enabled, to request phrase-level precision. Local matching
// always uses the original unquoted seed.
func quoteSeed(seed string, useQuotes bool) string {
	seed = strings.TrimSpace(seed)
	if !useQuotes || seed == "" {
		return seed
	}
	if len(seed) >= 2 && strings.HasPrefix(seed, `"`) && strings.HasSuffix(seed, `"`) {
		return seed
	}
	return `"` + seed + `"`
}

// normalizeItem coerces a raw provider item into a uniform Post. A bare
// string becomes a Post whose body is that string; an object is flattened
// field by field. Anything else is malformed and yields ok=false.
//
// This is the single point where the provider's shape inconsistency is
// resolved; nothing downstream does type checks on raw items.
func normalizeItem(raw domain.RawItem) (*domain.Post, bool) {
	switch v := raw.Value().(type) {
	case string:
		return &domain.Post{Body: strings.TrimSpace(v)}, true
	case map[string]interface{}:
		return &domain.Post{
			Body:    joinTextFields(v),
			Views:   intField(v, "views", "views_count"),
			Link:    stringField(v, "display_url", "url", "link"),
			Channel: channelTitle(v),
		}, true
	default:
		return nil, false
	}
}

// joinTextFields joins the trimmed, non-empty title/text/caption fields with
// newlines, in that fixed order.
func joinTextFields(fields map[string]interface{}) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"title", "text", "caption"} {
		if s, ok := fields[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// stringField returns the first non-empty string value among the given keys
func stringField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// intField returns the first parseable integer among the given keys,
// defaulting to 0. JSON numbers arrive as float64; the provider has also been
// seen sending numeric strings.
func intField(fields map[string]interface{}, keys ...string) int {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}

// channelTitle passes through the publishing channel's title when present
func channelTitle(fields map[string]interface{}) string {
	channel, ok := fields["channel"].(map[string]interface{})
	if !ok {
		return ""
	}
	title, _ := channel["title"].(string)
	return title
}
