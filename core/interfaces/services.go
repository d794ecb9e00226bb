// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"organics-app-api/core/domain"
)

// PageFetcher issues one paginated request at a time against the external
// content-search provider.
type PageFetcher interface {
	// FetchPage requests a single page of raw items. Transport and protocol
	// failures are returned as errors from core/errors; they never panic.
	FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error)

	// PageSize returns the fixed page size used by FetchPage. A page with
	// fewer items than this signals provider exhaustion.
	PageSize() int

	// Validate reports the fatal configuration precondition (a missing
	// credential) without performing any network activity.
	Validate() error
}

// SearchService runs the full fetch-normalize-filter-match-dedup pipeline.
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}
