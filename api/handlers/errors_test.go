package handlers

import (
	"context"
	"fmt"
	"testing"

	"organics-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "cancelled context returns 408",
			input:          context.Canceled,
			expectedStatus: 408,
			expectedInMsg:  "cancelled",
		},
		{
			name:           "ConfigurationError returns 503",
			input:          &errors.ConfigurationError{Setting: "PROVIDER_TOKEN", Message: "missing provider token"},
			expectedStatus: 503,
			expectedInMsg:  "not configured",
		},
		{
			name:           "ProtocolError with 429 returns 429",
			input:          &errors.ProtocolError{Endpoint: "/channels/posts/search", StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited",
		},
		{
			name:           "ProtocolError with 500 returns 503",
			input:          &errors.ProtocolError{Endpoint: "/channels/posts/search", StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedInMsg:  "provider error",
		},
		{
			name:           "ProtocolError with bad envelope returns 502",
			input:          &errors.ProtocolError{Endpoint: "/channels/posts/search", StatusCode: 200, Message: "status not ok"},
			expectedStatus: 502,
			expectedInMsg:  "Unexpected",
		},
		{
			name:           "TransportError returns 503",
			input:          &errors.TransportError{URL: "https://provider.example/search", Err: fmt.Errorf("connection refused")},
			expectedStatus: 503,
			expectedInMsg:  "unreachable",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("something broke"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			statusErr, ok := result.(huma.StatusError)
			assert.True(t, ok, "expected a huma.StatusError, got %T", result)
			assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
			assert.Contains(t, result.Error(), tt.expectedInMsg)
		})
	}
}
