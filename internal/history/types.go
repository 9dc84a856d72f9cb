package history

import (
	"context"
	"time"
)

// Turn records one processed exchange: the user message and the assistant
// reply, with the resolved topic and sentiment. Turns are append-only and
// never mutated after persistence.
type Turn struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Topic       string    `json:"therapy_type"`
	Sentiment   string    `json:"sentiment"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists and retrieves conversation turns.
type Store interface {
	Save(ctx context.Context, turn Turn) (string, error)
	// RecentBySession returns up to limit turns for the session, oldest
	// first. limit <= 0 applies a store default.
	RecentBySession(ctx context.Context, sessionID string, limit int) ([]Turn, error)
	Close() error
}
