package chat

import (
	"strings"

	"github.com/ent0n29/amala/internal/provider"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ExtractText concatenates the text blocks of a completion in order. Blocks
// of other kinds (images, future multimodal types) are ignored. Never fails;
// a response without text blocks yields the empty string.
func ExtractText(resp provider.MessageResponse) string {
	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// ExtractSentiment normalizes the model's single-word sentiment answer.
// Matching is on the stems "positiv"/"negativ" so Romance-language answers
// like "positivo"/"negativo" still resolve; positive is tested first.
// Anything else, including empty input, is neutral.
func ExtractSentiment(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "positiv"):
		return SentimentPositive
	case strings.Contains(s, "negativ"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
