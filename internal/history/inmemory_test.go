package history

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryStoreSaveAssignsIdentity(t *testing.T) {
	store := NewInMemoryStore()
	id, err := store.Save(context.Background(), Turn{
		SessionID:   "s1",
		UserMessage: "hello",
		BotResponse: "hi",
		Topic:       "general",
		Sentiment:   "neutral",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if id == "" {
		t.Fatalf("Save() returned empty identity")
	}

	turns, err := store.RecentBySession(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("RecentBySession() error = %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("len(turns) = %d, want 1", len(turns))
	}
	if turns[0].ID != id {
		t.Fatalf("ID = %q, want %q", turns[0].ID, id)
	}
	if turns[0].CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not assigned")
	}
}

func TestInMemoryStoreRecentBySessionOrderAndLimit(t *testing.T) {
	store := NewInMemoryStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := store.Save(context.Background(), Turn{
			SessionID:   "s1",
			UserMessage: string(rune('a' + i)),
			BotResponse: "r",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	turns, err := store.RecentBySession(context.Background(), "s1", 5)
	if err != nil {
		t.Fatalf("RecentBySession() error = %v", err)
	}
	if len(turns) != 5 {
		t.Fatalf("len(turns) = %d, want 5", len(turns))
	}
	// Oldest of the window first; the two earliest turns fall off.
	if turns[0].UserMessage != "c" || turns[4].UserMessage != "g" {
		t.Fatalf("window = %q..%q, want c..g", turns[0].UserMessage, turns[4].UserMessage)
	}
}

func TestInMemoryStoreUnknownSession(t *testing.T) {
	store := NewInMemoryStore()
	turns, err := store.RecentBySession(context.Background(), "nope", 5)
	if err != nil {
		t.Fatalf("RecentBySession() error = %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("len(turns) = %d, want 0", len(turns))
	}
}
