// ABOUTME: Search handler for the Huma API
// ABOUTME: Provides the HTTP endpoint that runs the post search pipeline

package handlers

import (
	"context"
	"net/http"
	"time"

	"organics-app-api/api/dto/mappers"
	"organics-app-api/api/dto/requests"
	"organics-app-api/api/dto/responses"
	"organics-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// dateLayout is the wire format for request date bounds.
const dateLayout = "2006-01-02"

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
	defaults      domain.Policy
}

// NewSearchHandler creates a new search handler. The supplied policy is the
// per-request baseline; request options override individual toggles.
func NewSearchHandler(searchService SearchService, defaults domain.Policy) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaults:      defaults,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchPosts",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search posts by seed phrases",
		Description: "Runs each phrase through the provider within the date range, filters and matches candidates, and returns the deduplicated results with per-phrase diagnostics",
		Tags:        []string{"Search"},
	}, h.SearchPosts)
}

// SearchPostsInput defines the input for the SearchPosts operation
type SearchPostsInput struct {
	Body requests.SearchRequest `json:"body"`
}

// SearchPostsOutput defines the output for the SearchPosts operation
type SearchPostsOutput struct {
	Body responses.SearchResponse
}

// SearchPosts handles the POST /search endpoint
func (h *SearchHandler) SearchPosts(ctx context.Context, input *SearchPostsInput) (*SearchPostsOutput, error) {
	since, err := parseDay(input.Body.Since)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("since must be a YYYY-MM-DD date", err)
	}
	until, err := parseDay(input.Body.Until)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("until must be a YYYY-MM-DD date", err)
	}

	domainReq := domain.SearchRequest{
		Seeds:  input.Body.Seeds,
		Since:  since,
		Until:  until,
		Policy: input.Body.ResolvePolicy(h.defaults),
	}

	result, err := h.searchService.Search(ctx, domainReq)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchPostsOutput{
		Body: mappers.ToSearchResponse(result),
	}, nil
}

// parseDay parses a YYYY-MM-DD date in UTC.
func parseDay(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
