package provider

import "context"

const fallbackText = "Sorry, the service is temporarily unavailable. " +
	"Please try again in a few moments. " +
	"We are here to help you with your questions about integrative therapies."

// FallbackResponse is the canned reply used when the provider cannot be
// reached at all. Usage is zero so it never inflates token accounting.
func FallbackResponse() MessageResponse {
	return MessageResponse{
		ID:         "fallback",
		Type:       "message",
		Role:       RoleAssistant,
		Content:    []ContentBlock{{Type: "text", Text: fallbackText}},
		StopReason: "end_turn",
	}
}

// FallbackClient substitutes the canned response when the wrapped client
// fails. It is an explicit opt-in: primary completions that answer the user
// must not be wrapped, or provider outages would silently degrade replies.
type FallbackClient struct {
	inner Client
}

func WithFallback(inner Client) *FallbackClient {
	return &FallbackClient{inner: inner}
}

func (c *FallbackClient) Complete(ctx context.Context, req MessageRequest) (MessageResponse, error) {
	resp, err := c.inner.Complete(ctx, req)
	if err != nil {
		return FallbackResponse(), nil
	}
	return resp, nil
}
