package provider

import (
	"context"
	"sync"
)

// MockClient replays scripted results and records requests for tests.
type MockClient struct {
	mu       sync.Mutex
	script   []mockResult
	Requests []MessageRequest
}

type mockResult struct {
	resp MessageResponse
	err  error
}

func NewMockClient() *MockClient { return &MockClient{} }

// QueueText enqueues a single-text-block success.
func (m *MockClient) QueueText(text string) {
	m.QueueResponse(MessageResponse{
		ID:         "mock",
		Type:       "message",
		Role:       RoleAssistant,
		Content:    []ContentBlock{{Type: "text", Text: text}},
		StopReason: "end_turn",
	})
}

func (m *MockClient) QueueResponse(resp MessageResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockResult{resp: resp})
}

func (m *MockClient) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockResult{err: err})
}

func (m *MockClient) Complete(ctx context.Context, req MessageRequest) (MessageResponse, error) {
	select {
	case <-ctx.Done():
		return MessageResponse{}, ctx.Err()
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if len(m.script) == 0 {
		return MessageResponse{
			ID:         "mock",
			Type:       "message",
			Role:       RoleAssistant,
			Content:    []ContentBlock{{Type: "text", Text: "I am listening."}},
			StopReason: "end_turn",
		}, nil
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next.resp, next.err
}
