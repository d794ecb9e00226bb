// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline errors to appropriate HTTP responses

package handlers

import (
	"context"
	"net/http"

	"organics-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts pipeline errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if err == context.Canceled || err == context.DeadlineExceeded {
		return huma.NewError(http.StatusRequestTimeout, "Search cancelled before completion")
	}

	// A configuration error means the service cannot reach the provider at
	// all; no amount of retrying the same request will help.
	if errors.IsConfiguration(err) {
		return huma.Error503ServiceUnavailable("Search provider is not configured", err)
	}

	if errors.IsProtocol(err) {
		if protoErr, ok := err.(*errors.ProtocolError); ok {
			switch {
			case protoErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by search provider")
			case protoErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("Search provider error", err)
			default:
				return huma.Error502BadGateway("Unexpected search provider response", err)
			}
		}
		return huma.Error502BadGateway("Unexpected search provider response", err)
	}

	if errors.IsTransport(err) {
		return huma.Error503ServiceUnavailable("Search provider unreachable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
