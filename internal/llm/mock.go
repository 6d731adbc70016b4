package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider is a test double that returns canned responses in FIFO
// order and records every request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []mockResult
	Calls     []Request
}

type mockResult struct {
	resp *Response
	err  error
}

// NewMockProvider creates an empty mock provider. With no enqueued
// responses, Generate returns a minimal valid response.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// EnqueueResponse adds a canned response to the queue.
func (m *MockProvider) EnqueueResponse(content json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResult{
		resp: &Response{
			Content:    content,
			Model:      m.ModelID(),
			StopReason: "end",
			Usage:      Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
		},
	})
}

// EnqueueError adds a canned error to the queue.
func (m *MockProvider) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResult{err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return &Response{
			Content:    json.RawMessage(`{}`),
			Model:      m.ModelID(),
			StopReason: "end",
		}, nil
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	return next.resp, next.err
}

func (m *MockProvider) ModelID() string {
	return "mock-model"
}

// CallCount returns how many Generate calls the mock has received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
