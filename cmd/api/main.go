// ABOUTME: Main entry point for the Organics API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"organics-app-api/api"
	"organics-app-api/api/handlers"
	"organics-app-api/core/domain"
	"organics-app-api/core/interfaces"
	"organics-app-api/core/provider"
	"organics-app-api/core/search"
	stdhttp "organics-app-api/infrastructure/http/standard"
	logruslogger "organics-app-api/infrastructure/logger/logrus"
	"organics-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Organics API", map[string]interface{}{
		"port":      cfg.Server.Port,
		"provider":  cfg.Provider.BaseURL,
		"max_pages": cfg.Search.MaxPages,
		"workers":   cfg.Search.Workers,
	})
	if cfg.Provider.Token == "" {
		logger.Warn("No provider token configured; searches will fail until PROVIDER_TOKEN is set", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the provider client and the search service on top of it
	providerClient := provider.NewClient(deps, provider.Config{
		BaseURL:           cfg.Provider.BaseURL,
		Token:             cfg.Provider.Token,
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
	})

	searchService := search.NewService(deps, providerClient)
	searchService.SetWorkerLimit(cfg.Search.Workers)

	// Default policy for requests that carry no overrides
	defaults := domain.Policy{
		UseQuotes:             cfg.Search.UseQuotes,
		RequireExact:          cfg.Search.RequireExact,
		TrustQueryOnEmptyBody: cfg.Search.TrustQueryOnEmptyBody,
		MinViews:              cfg.Search.MinViews,
		MaxPages:              cfg.Search.MaxPages,
		DateToInclusive:       cfg.Search.DateToInclusive,
		FuzzyThreshold:        cfg.Search.FuzzyThreshold,
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService, defaults)
	searchHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
   ____                        _             ___    ____  ____
  / __ \_________ _____ _____ (_)_________  /   |  / __ \/  _/
 / / / / ___/ __ '/ __ '/ __ \/ / ___/ ___/ / /| | / /_/ // /
/ /_/ / /  / /_/ / /_/ / / / / / /__(__  ) / ___ |/ ____// /
\____/_/   \__, /\__,_/_/ /_/_/\___/____/ /_/  |_/_/   /___/
          /____/
	`)
}
