// ABOUTME: Mappers between search domain models and response DTOs
// ABOUTME: Converts core SearchResult values into the API wire shape

package mappers

import (
	"organics-app-api/api/dto/responses"
	"organics-app-api/core/domain"
)

// ToSearchResponse converts a domain SearchResult to a response DTO.
func ToSearchResponse(result *domain.SearchResult) responses.SearchResponse {
	if result == nil {
		return responses.SearchResponse{Matches: []responses.MatchResponse{}}
	}

	matches := make([]responses.MatchResponse, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, responses.MatchResponse{
			Seed:    m.Seed,
			Body:    m.Body,
			Views:   m.Views,
			Link:    m.Link,
			Channel: m.Channel,
			Reason:  string(m.Reason),
		})
	}

	return responses.SearchResponse{
		Matches:      matches,
		TotalMatches: len(matches),
		Diagnostics:  result.Diagnostics,
	}
}
