package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ent0n29/amala/internal/reliability"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"
)

// HTTPClient calls the remote messages endpoint with bounded retries.
// It keeps no state across calls.
type HTTPClient struct {
	baseURL string
	apiKey  string
	policy  RetryPolicy
	client  *http.Client
}

func NewHTTPClient(baseURL, apiKey string, policy RetryPolicy) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		policy:  policy,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Complete issues the request, retrying transient failures until the policy's
// attempt budget or overall deadline runs out. A well-formed application
// error is surfaced immediately and never retried.
func (c *HTTPClient) Complete(ctx context.Context, req MessageRequest) (MessageResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return MessageResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	policy := c.policy.normalized()
	ctx, cancel := context.WithTimeout(ctx, policy.Deadline)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := reliability.JitteredDelay(policy.BaseDelay, policy.JitterMax)
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return MessageResponse{}, &ProviderError{Kind: KindTimeout, Err: lastErr}
			case <-timer.C:
			}
		}

		resp, err := c.attempt(ctx, payload)
		if err == nil {
			return resp, nil
		}

		var pe *ProviderError
		if errors.As(err, &pe) && pe.Kind == KindRejected {
			return MessageResponse{}, err
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	return MessageResponse{}, &ProviderError{Kind: KindTimeout, Err: lastErr}
}

func (c *HTTPClient) attempt(ctx context.Context, payload []byte) (MessageResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(payload))
	if err != nil {
		return MessageResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return MessageResponse{}, fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		var out MessageResponse
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			return MessageResponse{}, fmt.Errorf("decode response: %w", err)
		}
		return out, nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))

	if reliability.IsRetryableHTTPStatus(res.StatusCode) {
		return MessageResponse{}, fmt.Errorf("provider status %d: %s", res.StatusCode, string(body))
	}

	detail := string(body)
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		detail = envelope.Error.Message
	}
	return MessageResponse{}, &ProviderError{Kind: KindRejected, Status: res.StatusCode, Detail: detail}
}
