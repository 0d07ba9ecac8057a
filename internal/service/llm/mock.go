package llm

import (
	"context"
	"sync"
)

// MockCompleter is a test double for Completer.
type MockCompleter struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records the arguments of one Complete call.
type MockCall struct {
	SystemPrompt string
	UserPrompt   string
}

// Complete records the call and returns the configured text and error.
func (m *MockCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	m.mu.Unlock()
	return m.Text, m.Err
}

// Calls returns the recorded calls.
func (m *MockCompleter) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}
