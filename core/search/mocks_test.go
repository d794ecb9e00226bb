package search

import (
	"context"
	"sync"

	"organics-app-api/core/domain"
)

// mockPageFetcher is a mock implementation of the PageFetcher interface.
// pages maps query -> ordered pages; calls records every page request.
type mockPageFetcher struct {
	mu          sync.Mutex
	pages       map[string][]*domain.Page
	fetchFunc   func(ctx context.Context, req domain.PageRequest) (*domain.Page, error)
	validateErr error
	pageSize    int
	calls       []domain.PageRequest
}

func newMockFetcher() *mockPageFetcher {
	return &mockPageFetcher{
		pages:    make(map[string][]*domain.Page),
		pageSize: 50,
	}
}

func (m *mockPageFetcher) FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, req)
	}

	queued := m.pages[req.Query]
	if req.Page <= len(queued) {
		return queued[req.Page-1], nil
	}
	return &domain.Page{}, nil
}

func (m *mockPageFetcher) PageSize() int {
	return m.pageSize
}

func (m *mockPageFetcher) Validate() error {
	return m.validateErr
}

func (m *mockPageFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) log(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log(msg) }
