// Package chat implements the conversation orchestration engine: it bounds
// the conversational context, drives the primary completion, classifies
// sentiment, produces follow-up suggestions and persists the resulting turn.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/observability"
	"github.com/ent0n29/amala/internal/provider"
	"github.com/ent0n29/amala/internal/therapy"
)

// timestampLayout is the ISO-8601 local date-time shape of the public API,
// with no UTC offset.
const timestampLayout = "2006-01-02T15:04:05"

// emptyCompletionReply covers the rare case of a successful completion whose
// payload carries no text blocks.
const emptyCompletionReply = "Sorry, I could not process your message right now."

// Reply is the composed answer for one processed message.
type Reply struct {
	SessionID   string   `json:"session_id"`
	Message     string   `json:"message"`
	Topic       string   `json:"therapy_type"`
	Sentiment   string   `json:"sentiment"`
	Suggestions []string `json:"suggestions"`
	Timestamp   string   `json:"timestamp"`
}

// Options tunes one orchestrator instance.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	// HistoryWindow is the number of stored turns fed back to the model.
	HistoryWindow int
	// DegradedReply, when non-empty, substitutes the assistant response if
	// the primary completion fails instead of surfacing a ProcessingError.
	DegradedReply string
	// Now overrides the timestamp clock in tests.
	Now func() time.Time
}

// Orchestrator composes classifier, context builder, gateway, extractor and
// suggestion generator into the single ProcessMessage operation. Instances
// are safe for concurrent use: all mutable state is per-invocation.
type Orchestrator struct {
	client        provider.Client
	store         history.Store
	metrics       *observability.Metrics
	model         string
	maxTokens     int
	temperature   float64
	window        int
	degradedReply string
	now           func() time.Time
}

func NewOrchestrator(client provider.Client, store history.Store, metrics *observability.Metrics, opts Options) *Orchestrator {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = DefaultWindowSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Orchestrator{
		client:        client,
		store:         store,
		metrics:       metrics,
		model:         opts.Model,
		maxTokens:     opts.MaxTokens,
		temperature:   opts.Temperature,
		window:        opts.HistoryWindow,
		degradedReply: opts.DegradedReply,
		now:           opts.Now,
	}
}

// ProcessMessage runs one full turn: resolve topic, build context, complete,
// classify sentiment, generate suggestions, persist, respond. Sentiment and
// suggestion failures are absorbed with defaults; only the primary
// completion and the final persist can fail the turn.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sessionID, message, requestedTopic string) (Reply, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Reply{}, &ValidationError{Reason: "session_id must not be empty"}
	}
	if strings.TrimSpace(message) == "" {
		return Reply{}, &ValidationError{Reason: "message must not be empty"}
	}

	topic, known := therapy.Parse(requestedTopic)
	if !known {
		topic = therapy.Classify(message)
	}

	// A failed history read degrades to an empty context window rather than
	// failing the turn; the current message alone is still answerable.
	turns := o.readHistory(ctx, sessionID).WithDefault(nil)
	window := BuildContextWindow(turns, message, o.window)

	start := time.Now()
	resp, err := o.client.Complete(ctx, provider.MessageRequest{
		Model:       o.model,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
		System:      therapy.SystemPrompt(topic),
		Messages:    window,
		TopP:        1.0,
	})
	o.metrics.ObserveCompletionLatency(time.Since(start))

	degraded := false
	var botResponse string
	if err != nil {
		o.metrics.ObserveProviderError("primary")
		if o.degradedReply == "" {
			o.metrics.ObserveTurn(string(topic), "error")
			return Reply{}, &ProcessingError{Step: "primary_completion", Err: err}
		}
		degraded = true
		botResponse = o.degradedReply
	} else {
		botResponse = ExtractText(resp)
		if strings.TrimSpace(botResponse) == "" {
			botResponse = emptyCompletionReply
		}
	}

	sentiment := o.analyzeSentiment(ctx, message).WithDefault(SentimentNeutral)
	suggestions := o.generateSuggestions(ctx, message, topic).WithDefault(therapy.FallbackSuggestions(topic))
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	if _, err := o.store.Save(ctx, history.Turn{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: botResponse,
		Topic:       string(topic),
		Sentiment:   sentiment,
	}); err != nil {
		o.metrics.ObserveTurn(string(topic), "error")
		return Reply{}, &ProcessingError{Step: "persist_turn", Err: err}
	}

	outcome := "ok"
	if degraded {
		outcome = "degraded"
	}
	o.metrics.ObserveTurn(string(topic), outcome)

	return Reply{
		SessionID:   sessionID,
		Message:     botResponse,
		Topic:       string(topic),
		Sentiment:   sentiment,
		Suggestions: suggestions,
		Timestamp:   o.now().Format(timestampLayout),
	}, nil
}

func (o *Orchestrator) readHistory(ctx context.Context, sessionID string) Outcome[[]history.Turn] {
	turns, err := o.store.RecentBySession(ctx, sessionID, o.window)
	if err != nil {
		return fail[[]history.Turn](err)
	}
	return ok(turns)
}

// analyzeSentiment issues the secondary single-word classification call.
// Advisory: the outcome fails on any provider error and the caller defaults
// to neutral.
func (o *Orchestrator) analyzeSentiment(ctx context.Context, text string) Outcome[string] {
	resp, err := o.client.Complete(ctx, provider.MessageRequest{
		Model:       o.model,
		MaxTokens:   50,
		Temperature: 0.3,
		System:      therapy.SentimentPrompt,
		Messages:    []provider.Turn{{Role: provider.RoleUser, Content: text}},
	})
	if err != nil {
		o.metrics.ObserveProviderError("sentiment")
		return fail[string](err)
	}
	return ok(ExtractSentiment(ExtractText(resp)))
}
