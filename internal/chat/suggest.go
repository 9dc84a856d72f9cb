package chat

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/ent0n29/amala/internal/provider"
	"github.com/ent0n29/amala/internal/therapy"
)

const maxSuggestions = 3

var (
	numberMarker = regexp.MustCompile(`^[0-9]+[.)\-]\s*`)
	bulletMarker = regexp.MustCompile(`^[•\-*]\s*`)
)

var errNoSuggestions = errors.New("no usable suggestion lines")

// generateSuggestions asks the model for three short follow-up questions. The
// outcome fails on any provider error or an unusable reply, so the caller can
// substitute the static per-topic list.
func (o *Orchestrator) generateSuggestions(ctx context.Context, conversationContext string, topic therapy.Topic) Outcome[[]string] {
	resp, err := o.client.Complete(ctx, provider.MessageRequest{
		Model:       o.model,
		MaxTokens:   150,
		Temperature: 0.8,
		System:      therapy.SuggestionSystemPrompt,
		Messages: []provider.Turn{{
			Role:    provider.RoleUser,
			Content: therapy.SuggestionUserPrompt(conversationContext, topic),
		}},
	})
	if err != nil {
		o.metrics.ObserveProviderError("suggestions")
		return fail[[]string](err)
	}

	suggestions := parseSuggestionLines(ExtractText(resp))
	if len(suggestions) == 0 {
		return fail[[]string](errNoSuggestions)
	}
	return ok(suggestions)
}

// parseSuggestionLines splits a reply into at most three cleaned questions:
// leading numbering and bullet markers are stripped, blank results dropped.
func parseSuggestionLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(line)
		cleaned = numberMarker.ReplaceAllString(cleaned, "")
		cleaned = bulletMarker.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
