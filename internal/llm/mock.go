package llm

import (
	"context"
	"fmt"
)

// MockReply is one scripted response for the mock generator.
type MockReply struct {
	Content string
	Err     error
}

// MockGenerator returns scripted replies in order and records the prompts it
// received. Intended for tests.
type MockGenerator struct {
	replies []MockReply
	calls   int

	// Prompts holds every prompt passed to Generate, in call order.
	Prompts []string
}

// NewMockGenerator creates a mock generator with the given scripted replies.
func NewMockGenerator(replies ...MockReply) *MockGenerator {
	return &MockGenerator{replies: replies}
}

// Generate returns the next scripted reply. Calls beyond the script fail.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.calls >= len(m.replies) {
		return "", fmt.Errorf("mock generator exhausted after %d calls", m.calls)
	}
	r := m.replies[m.calls]
	m.calls++
	return r.Content, r.Err
}

// Calls returns the number of Generate invocations so far.
func (m *MockGenerator) Calls() int {
	return m.calls
}
