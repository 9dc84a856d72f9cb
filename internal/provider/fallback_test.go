package provider

import (
	"context"
	"errors"
	"testing"
)

func TestFallbackClientSubstitutesCannedResponse(t *testing.T) {
	inner := NewMockClient()
	inner.QueueError(&ProviderError{Kind: KindTimeout})

	client := WithFallback(inner)
	resp, err := client.Complete(context.Background(), MessageRequest{
		Model:     "m",
		MaxTokens: 8,
		Messages:  []Turn{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete() error = %v, want canned fallback", err)
	}
	if resp.ID != "fallback" {
		t.Fatalf("ID = %q, want %q", resp.ID, "fallback")
	}
	if resp.Role != RoleAssistant {
		t.Fatalf("Role = %q, want %q", resp.Role, RoleAssistant)
	}
	if len(resp.Content) != 1 || resp.Content[0].Type != "text" || resp.Content[0].Text == "" {
		t.Fatalf("Content = %+v, want one non-empty text block", resp.Content)
	}
	if resp.Usage.InputTokens != 0 || resp.Usage.OutputTokens != 0 {
		t.Fatalf("Usage = %+v, want zero", resp.Usage)
	}
}

func TestFallbackClientPassesThroughSuccess(t *testing.T) {
	inner := NewMockClient()
	inner.QueueText("real answer")

	client := WithFallback(inner)
	resp, err := client.Complete(context.Background(), MessageRequest{
		Model:     "m",
		MaxTokens: 8,
		Messages:  []Turn{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if resp.Content[0].Text != "real answer" {
		t.Fatalf("text = %q, want pass-through", resp.Content[0].Text)
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected cancellation")
	}
}
