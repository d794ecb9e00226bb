// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the pipeline failure taxonomy for error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents a fatal precondition failure, such as a
// missing provider credential. It is the only error that crosses the pipeline
// boundary as a hard failure and it is never retried.
type ConfigurationError struct {
	Setting string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Message)
}

// TransportError represents a network or timeout failure on a page request.
// It aborts pagination for the current seed only.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error requesting %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying failure
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a response that is not a well-formed success
// envelope. Handled identically to TransportError.
type ProtocolError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("protocol error from %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("protocol error from %s: %s", e.Endpoint, e.Message)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsProtocol checks if an error is a ProtocolError
func IsProtocol(err error) bool {
	var protoErr *ProtocolError
	return errors.As(err, &protoErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
