package provider

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"organics-app-api/core/domain"
	coreerrors "organics-app-api/core/errors"
	"organics-app-api/core/interfaces"
)

func testConfig() Config {
	return Config{
		BaseURL: "https://api.example.com",
		Token:   "test-token",
	}
}

func testDeps(client interfaces.HTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{HTTPClient: client}
}

func okEnvelope(items string) string {
	return `{"status":"ok","response":{"items":[` + items + `],"count":1,"total_count":1}}`
}

func TestNewClient_DefaultsPageSize(t *testing.T) {
	client := NewClient(testDeps(nil), testConfig())

	if client.PageSize() != 50 {
		t.Errorf("PageSize() = %d, want 50", client.PageSize())
	}
}

func TestValidate_MissingToken(t *testing.T) {
	cfg := testConfig()
	cfg.Token = ""
	client := NewClient(testDeps(nil), cfg)

	err := client.Validate()

	if err == nil {
		t.Fatal("Validate should fail without a token")
	}
	if !coreerrors.IsConfiguration(err) {
		t.Errorf("expected ConfigurationError, got %T", err)
	}
}

func TestValidate_WithToken(t *testing.T) {
	client := NewClient(testDeps(nil), testConfig())

	if err := client.Validate(); err != nil {
		t.Errorf("Validate returned unexpected error: %v", err)
	}
}

func TestFetchPage_MissingToken_NoNetworkCall(t *testing.T) {
	called := false
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			called = true
			return &mockResponse{statusCode: 200, body: okEnvelope("")}, nil
		},
	}
	cfg := testConfig()
	cfg.Token = ""
	client := NewClient(testDeps(httpClient), cfg)

	_, err := client.FetchPage(context.Background(), domain.PageRequest{Page: 1})

	if !coreerrors.IsConfiguration(err) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}
	if called {
		t.Error("FetchPage should not reach the network without a credential")
	}
}

func TestFetchPage_BuildsRequestParams(t *testing.T) {
	var gotURL string
	var gotHeaders map[string]string
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, reqURL string, headers map[string]string) (interfaces.Response, error) {
			gotURL = reqURL
			gotHeaders = headers
			return &mockResponse{statusCode: 200, body: okEnvelope(`{"text":"hi"}`)}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	req := domain.PageRequest{
		Query: `"market report"`,
		Since: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
		Page:  2,
	}
	_, err := client.FetchPage(context.Background(), req)
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}

	parsed, err := url.Parse(gotURL)
	if err != nil {
		t.Fatalf("request URL did not parse: %v", err)
	}
	if parsed.Path != "/channels/posts/search" {
		t.Errorf("path = %s, want /channels/posts/search", parsed.Path)
	}

	q := parsed.Query()
	if q.Get("query") != `"market report"` {
		t.Errorf("query param = %q", q.Get("query"))
	}
	if q.Get("date_from") != "2025-10-01" {
		t.Errorf("date_from = %q, want 2025-10-01", q.Get("date_from"))
	}
	if q.Get("date_to") != "2025-10-05" {
		t.Errorf("date_to = %q, want 2025-10-05", q.Get("date_to"))
	}
	if q.Get("limit") != "50" {
		t.Errorf("limit = %q, want 50", q.Get("limit"))
	}
	if q.Get("page") != "2" {
		t.Errorf("page = %q, want 2", q.Get("page"))
	}

	if gotHeaders["Authorization"] != "Bearer test-token" {
		t.Errorf("Authorization header = %q", gotHeaders["Authorization"])
	}
}

func TestFetchPage_InclusiveUpperBound(t *testing.T) {
	var gotURL string
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, reqURL string, headers map[string]string) (interfaces.Response, error) {
			gotURL = reqURL
			return &mockResponse{statusCode: 200, body: okEnvelope("")}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	req := domain.PageRequest{
		Query:       "x",
		Since:       time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Until:       time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
		InclusiveTo: true,
		Page:        1,
	}
	if _, err := client.FetchPage(context.Background(), req); err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}

	if !strings.Contains(gotURL, "date_to=2025-10-06") {
		t.Errorf("date_to should be advanced by one day, got URL %s", gotURL)
	}
}

func TestFetchPage_TransportFailure(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	_, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})

	if !coreerrors.IsTransport(err) {
		t.Errorf("expected TransportError, got %v", err)
	}
}

func TestFetchPage_NonSuccessStatusCode(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 502, body: "bad gateway"}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	_, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})

	if !coreerrors.IsProtocol(err) {
		t.Errorf("expected ProtocolError, got %v", err)
	}
}

func TestFetchPage_MalformedEnvelope(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "not json"}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	_, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})

	if !coreerrors.IsProtocol(err) {
		t.Errorf("expected ProtocolError for malformed body, got %v", err)
	}
}

func TestFetchPage_StatusNotOk(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"status":"error","error":"bad request"}`}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	_, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})

	if !coreerrors.IsProtocol(err) {
		t.Errorf("expected ProtocolError for non-ok status, got %v", err)
	}
}

func TestFetchPage_HeterogeneousItems(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			body := okEnvelope(`{"title":"a post","views":10},"a bare string",42`)
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	page, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}

	if len(page.Items) != 3 {
		t.Fatalf("expected 3 raw items, got %d", len(page.Items))
	}
	if _, ok := page.Items[0].Value().(map[string]interface{}); !ok {
		t.Error("first item should decode as an object")
	}
	if _, ok := page.Items[1].Value().(string); !ok {
		t.Error("second item should decode as a string")
	}
}

func TestFetchPage_PageMetadata(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			body := `{"status":"ok","response":{"items":[],"count":0,"total_count":137}}`
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	client := NewClient(testDeps(httpClient), testConfig())

	page, err := client.FetchPage(context.Background(), domain.PageRequest{Query: "x", Page: 1})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}

	if page.TotalCount != 137 {
		t.Errorf("TotalCount = %d, want 137", page.TotalCount)
	}
}
