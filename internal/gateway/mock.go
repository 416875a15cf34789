package gateway

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockChat transport.
type MockResponse struct {
	Content string
	Err     error
}

// MockChat is a deterministic ChatCompleter for testing. It returns
// canned responses in FIFO order and records all requests.
type MockChat struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []ChatRequest
}

// NewMockChat creates a MockChat with the given canned responses.
func NewMockChat(responses ...MockResponse) *MockChat {
	return &MockChat{responses: responses}
}

// Complete returns the next canned response or an empty string when the
// queue is exhausted.
func (m *MockChat) Complete(_ context.Context, req ChatRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return "", nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.Content, resp.Err
}

// ModelID returns "mock".
func (m *MockChat) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockChat) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Complete calls made.
func (m *MockChat) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
