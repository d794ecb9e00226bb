// ABOUTME: Search service orchestrates the fetch-normalize-filter-match-dedup pipeline
// ABOUTME: Drives the pipeline per seed and aggregates deterministically across seeds

package search

import (
	"context"
	"sync"

	"organics-app-api/core/domain"
	"organics-app-api/core/errors"
	"organics-app-api/core/interfaces"
)

// defaultWorkerLimit bounds concurrent seed processing so the external
// provider's rate limits are respected
const defaultWorkerLimit = 4

// Service runs search executions against a page fetcher
type Service struct {
	deps    interfaces.Dependencies
	fetcher interfaces.PageFetcher
	workers int
}

// NewService creates a new search service instance
func NewService(deps interfaces.Dependencies, fetcher interfaces.PageFetcher) *Service {
	return &Service{
		deps:    deps,
		fetcher: fetcher,
		workers: defaultWorkerLimit,
	}
}

// SetWorkerLimit bounds how many seeds are processed concurrently
func (s *Service) SetWorkerLimit(n int) {
	if n > 0 {
		s.workers = n
	}
}

// seedResult is one seed's contribution, slotted by seed position so the
// aggregated output is deterministic regardless of completion order
type seedResult struct {
	matches []domain.Match
	stats   seedStats
}

// Search runs the whole pipeline: per seed, build the outbound query, page
// through the provider, normalize, filter by views, match; then dedup the
// aggregated list once and return it with the diagnostics narrative.
//
// Only a missing-credential ConfigurationError (or the caller's cancellation)
// crosses this boundary as a hard failure. Per-seed fetch failures degrade the
// result set and are narrated in diagnostics instead.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	if s.fetcher == nil {
		return nil, &errors.ConfigurationError{
			Setting: "page fetcher",
			Message: "not configured",
		}
	}

	// Fatal precondition, checked once before any network activity
	if err := s.fetcher.Validate(); err != nil {
		return nil, err
	}

	req = req.Normalized()
	rep := newReport(req.Policy.Summary())

	if len(req.Seeds) == 0 {
		rep.addLine("no phrases supplied; nothing to search")
		return &domain.SearchResult{
			Matches:     []domain.Match{},
			Diagnostics: rep.String(),
		}, nil
	}

	// Seeds are mutually independent; process them on a bounded worker pool.
	// Pages within one seed stay strictly sequential inside runSeed.
	results := make([]seedResult, len(req.Seeds))
	semaphore := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, seed := range req.Seeds {
		wg.Add(1)
		go func(idx int, seed string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx] = s.runSeed(ctx, seed, req)
		}(i, seed)
	}

	wg.Wait()

	// The contract is binary: a cancelled call returns no partial result and
	// the diagnostics accumulated so far are discarded with it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0)
	for i, seed := range req.Seeds {
		res := results[i]
		matches = append(matches, res.matches...)
		rep.addSeed(seed, res.stats)

		if res.stats.fetchErr != nil && s.deps.Logger != nil {
			s.deps.Logger.Warn("Seed pagination aborted", map[string]interface{}{
				"seed":  seed,
				"error": res.stats.fetchErr.Error(),
			})
		}
	}

	deduped := dedupMatches(matches)
	rep.addTotals(len(matches), len(deduped))

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Search completed", map[string]interface{}{
			"seeds":   len(req.Seeds),
			"matched": len(matches),
			"deduped": len(deduped),
		})
	}

	return &domain.SearchResult{
		Matches:     deduped,
		Diagnostics: rep.String(),
	}, nil
}

// runSeed collects and filters all candidates for one seed. Pagination stops
// at the first page shorter than the page size or at the policy ceiling; a
// fetch error aborts pagination for this seed only.
func (s *Service) runSeed(ctx context.Context, seed string, req domain.SearchRequest) seedResult {
	query := quoteSeed(seed, req.Policy.UseQuotes)
	pageSize := s.fetcher.PageSize()

	maxPages := req.Policy.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	var items []domain.RawItem
	var fetchErr error
	for page := 1; page <= maxPages; page++ {
		pg, err := s.fetcher.FetchPage(ctx, domain.PageRequest{
			Query:       query,
			Since:       req.Since,
			Until:       req.Until,
			InclusiveTo: req.Policy.DateToInclusive,
			Page:        page,
		})
		if err != nil {
			fetchErr = err
			break
		}
		items = append(items, pg.Items...)
		if len(pg.Items) < pageSize {
			break
		}
	}

	st := seedStats{fetched: len(items), fetchErr: fetchErr}
	var matches []domain.Match

	for _, raw := range items {
		post, ok := normalizeItem(raw)
		if !ok {
			st.malformed++
			continue
		}
		if post.Views < req.Policy.MinViews {
			continue
		}
		st.afterViews++

		accepted, reason := matchPhrase(seed, post.Body, req.Policy)
		if !accepted {
			continue
		}
		st.matched++
		matches = append(matches, domain.Match{
			Post:   *post,
			Seed:   seed,
			Reason: reason,
		})
	}

	return seedResult{matches: matches, stats: st}
}
