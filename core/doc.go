// Package core contains the business logic for the Organics API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Policy, Post, Match, SearchRequest, etc.)
// - search: The fetch, normalize, filter, match and dedup pipeline
// - provider: The content-search provider client used as the page fetcher
// - errors: Custom error types for the pipeline failure taxonomy
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "organics-app-api/core/provider"
//	    "organics-app-api/core/search"
//	    "organics-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the fetcher and the service
//	fetcher := provider.NewClient(deps, provider.Config{Token: token})
//	searchService := search.NewService(deps, fetcher)
//
//	// Run a search
//	result, err := searchService.Search(ctx, domain.SearchRequest{
//	    Seeds: []string{"market report"},
//	    Since: since,
//	    Until: until,
//	    Policy: domain.DefaultPolicy(),
//	})
package core
