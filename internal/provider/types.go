// Package provider owns the network contract with the remote completion
// provider: request construction, retry, timeout budget, and the canned
// degraded response.
package provider

import "context"

// Turn is a single role-attributed message in a completion request.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessageRequest is the body sent to the messages endpoint. Optional fields
// carry omitempty so absent values are left out of the payload entirely.
type MessageRequest struct {
	Model         string   `json:"model"`
	MaxTokens     int      `json:"max_tokens"`
	Temperature   float64  `json:"temperature"`
	System        string   `json:"system,omitempty"`
	Messages      []Turn   `json:"messages"`
	TopP          float64  `json:"top_p,omitempty"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

// ContentBlock is one element of a multi-block completion payload. Blocks of
// types other than "text" are carried through untouched; extraction ignores
// them.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// MessageResponse is the provider's reply to a messages request.
type MessageResponse struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Role         string         `json:"role"`
	Content      []ContentBlock `json:"content"`
	Model        string         `json:"model"`
	StopReason   string         `json:"stop_reason"`
	StopSequence string         `json:"stop_sequence,omitempty"`
	Usage        Usage          `json:"usage"`
}

type errorEnvelope struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is the completion gateway contract consumed by the orchestrator.
type Client interface {
	Complete(ctx context.Context, req MessageRequest) (MessageResponse, error)
}
