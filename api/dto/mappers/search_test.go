package mappers

import (
	"testing"

	"organics-app-api/core/domain"
)

func TestToSearchResponse(t *testing.T) {
	result := &domain.SearchResult{
		Matches: []domain.Match{
			{
				Post:   domain.Post{Body: "quarterly market report", Views: 1200, Link: "https://example.com/p/1", Channel: "Example"},
				Seed:   "market report",
				Reason: domain.ReasonStrict,
			},
			{
				Post:   domain.Post{Body: "", Views: 300},
				Seed:   "media only",
				Reason: domain.ReasonTrusted,
			},
		},
		Diagnostics: "total: 2 matched, 2 after dedup",
	}

	response := ToSearchResponse(result)

	if response.TotalMatches != 2 {
		t.Errorf("TotalMatches = %d, want 2", response.TotalMatches)
	}

	if len(response.Matches) != 2 {
		t.Fatalf("len(Matches) = %d, want 2", len(response.Matches))
	}

	first := response.Matches[0]
	if first.Seed != "market report" {
		t.Errorf("Seed = %s, want market report", first.Seed)
	}
	if first.Body != "quarterly market report" {
		t.Errorf("Body = %s, want quarterly market report", first.Body)
	}
	if first.Views != 1200 {
		t.Errorf("Views = %d, want 1200", first.Views)
	}
	if first.Link != "https://example.com/p/1" {
		t.Errorf("Link = %s, want https://example.com/p/1", first.Link)
	}
	if first.Channel != "Example" {
		t.Errorf("Channel = %s, want Example", first.Channel)
	}
	if first.Reason != "strict" {
		t.Errorf("Reason = %s, want strict", first.Reason)
	}

	if response.Matches[1].Reason != "trusted" {
		t.Errorf("Reason = %s, want trusted", response.Matches[1].Reason)
	}

	if response.Diagnostics != result.Diagnostics {
		t.Errorf("Diagnostics = %s, want %s", response.Diagnostics, result.Diagnostics)
	}
}

func TestToSearchResponse_NilResult(t *testing.T) {
	response := ToSearchResponse(nil)

	if response.Matches == nil {
		t.Error("Matches should be an empty slice, not nil")
	}
	if response.TotalMatches != 0 {
		t.Errorf("TotalMatches = %d, want 0", response.TotalMatches)
	}
}

func TestToSearchResponse_EmptyMatchesSerializesAsEmptyList(t *testing.T) {
	response := ToSearchResponse(&domain.SearchResult{Diagnostics: "total: 0 matched, 0 after dedup"})

	if response.Matches == nil {
		t.Error("Matches should be an empty slice, not nil")
	}
}
