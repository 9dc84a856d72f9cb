package chat

import (
	"strings"

	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/provider"
)

// DefaultWindowSize bounds how many stored turns feed the model by default.
const DefaultWindowSize = 5

// BuildContextWindow turns stored history plus the new user message into the
// ordered turn list sent to the model. The most recent windowSize turns are
// emitted oldest first, skipping blank halves; the final entry is always the
// new user message. Pure function, no I/O.
func BuildContextWindow(hist []history.Turn, newMessage string, windowSize int) []provider.Turn {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if windowSize > len(hist) {
		windowSize = len(hist)
	}

	turns := make([]provider.Turn, 0, 2*windowSize+1)
	for _, t := range hist[len(hist)-windowSize:] {
		if strings.TrimSpace(t.UserMessage) != "" {
			turns = append(turns, provider.Turn{Role: provider.RoleUser, Content: t.UserMessage})
		}
		if strings.TrimSpace(t.BotResponse) != "" {
			turns = append(turns, provider.Turn{Role: provider.RoleAssistant, Content: t.BotResponse})
		}
	}

	return append(turns, provider.Turn{Role: provider.RoleUser, Content: newMessage})
}
