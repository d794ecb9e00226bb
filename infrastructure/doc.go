// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://provider.example/search", headers)
//
// # Logger
//
//	logger := logrus.NewLogger("info")
//	logger.Info("search finished", map[string]interface{}{"matches": 3})
package infrastructure
