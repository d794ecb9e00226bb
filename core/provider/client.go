// ABOUTME: Provider client implements paginated post search against the external API
// ABOUTME: Validates the response envelope and never lets provider failures panic past this boundary

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"organics-app-api/core/domain"
	"organics-app-api/core/errors"
	"organics-app-api/core/interfaces"
)

const (
	defaultPageSize = 50
	searchPath      = "/channels/posts/search"
	dateLayout      = "2006-01-02"
)

// Config holds provider client configuration
type Config struct {
	// BaseURL is the provider API root, e.g. https://api.telemetr.me
	BaseURL string

	// Token is the bearer credential forwarded on every request
	Token string

	// PageSize overrides the fixed page size (defaults to 50)
	PageSize int

	// RequestsPerSecond paces outbound requests (0 disables pacing)
	RequestsPerSecond float64
}

// Client fetches pages of raw posts from the content-search provider
type Client struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *rate.Limiter
}

// NewClient creates a provider client using the injected HTTP client
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &Client{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// PageSize returns the fixed page size used on the wire
func (c *Client) PageSize() int {
	return c.cfg.PageSize
}

// Validate reports the fatal configuration precondition without any network
// activity. A missing credential is never retried.
func (c *Client) Validate() error {
	if c.cfg.Token == "" {
		return &errors.ConfigurationError{
			Setting: "provider token",
			Message: "bearer credential is not set",
		}
	}
	if c.cfg.BaseURL == "" {
		return &errors.ConfigurationError{
			Setting: "provider base URL",
			Message: "base URL is not set",
		}
	}
	return nil
}

// envelope is the provider's response wrapper
type envelope struct {
	Status   string `json:"status"`
	Response struct {
		Items      []domain.RawItem `json:"items"`
		Count      int              `json:"count"`
		TotalCount int              `json:"total_count"`
	} `json:"response"`
}

// FetchPage requests a single page of raw items. The upper date bound is
// advanced by one day when the request asks for an inclusive upper bound,
// because the provider treats date_to as exclusive.
func (c *Client) FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	until := req.Until
	if req.InclusiveTo {
		until = until.AddDate(0, 0, 1)
	}

	params := url.Values{}
	params.Set("query", req.Query)
	params.Set("date_from", req.Since.Format(dateLayout))
	params.Set("date_to", until.Format(dateLayout))
	params.Set("limit", strconv.Itoa(c.cfg.PageSize))
	params.Set("page", strconv.Itoa(req.Page))

	requestURL := c.cfg.BaseURL + searchPath + "?" + params.Encode()
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.Token,
	}

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL, headers)
	if err != nil {
		return nil, &errors.TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ProtocolError{
			Endpoint:   searchPath,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status code",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.TransportError{URL: requestURL, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return nil, &errors.ProtocolError{
			Endpoint: searchPath,
			Message:  fmt.Sprintf("response is not a JSON object: %v", err),
		}
	}

	if env.Status != "ok" {
		return nil, &errors.ProtocolError{
			Endpoint: searchPath,
			Message:  fmt.Sprintf("status %q is not ok", env.Status),
		}
	}

	return &domain.Page{
		Items:      env.Response.Items,
		Count:      env.Response.Count,
		TotalCount: env.Response.TotalCount,
	}, nil
}
