package chat

import (
	"testing"

	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/provider"
)

func TestBuildContextWindowEmptyHistory(t *testing.T) {
	turns := BuildContextWindow(nil, "hello", 5)
	if len(turns) != 1 {
		t.Fatalf("len(turns) = %d, want 1", len(turns))
	}
	if turns[0].Role != provider.RoleUser || turns[0].Content != "hello" {
		t.Fatalf("turns[0] = %+v, want the new user message", turns[0])
	}
}

func TestBuildContextWindowInterleavesRoles(t *testing.T) {
	hist := []history.Turn{
		{UserMessage: "q1", BotResponse: "a1"},
		{UserMessage: "q2", BotResponse: "a2"},
	}
	turns := BuildContextWindow(hist, "q3", 5)
	want := []provider.Turn{
		{Role: provider.RoleUser, Content: "q1"},
		{Role: provider.RoleAssistant, Content: "a1"},
		{Role: provider.RoleUser, Content: "q2"},
		{Role: provider.RoleAssistant, Content: "a2"},
		{Role: provider.RoleUser, Content: "q3"},
	}
	if len(turns) != len(want) {
		t.Fatalf("len(turns) = %d, want %d", len(turns), len(want))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Fatalf("turns[%d] = %+v, want %+v", i, turns[i], want[i])
		}
	}
}

func TestBuildContextWindowSkipsBlankHalves(t *testing.T) {
	hist := []history.Turn{
		{UserMessage: "q1", BotResponse: "  "},
		{UserMessage: "", BotResponse: "a2"},
	}
	turns := BuildContextWindow(hist, "q3", 5)
	if len(turns) != 3 {
		t.Fatalf("len(turns) = %d, want 3", len(turns))
	}
	if turns[0].Content != "q1" || turns[1].Content != "a2" || turns[2].Content != "q3" {
		t.Fatalf("unexpected window: %+v", turns)
	}
}

func TestBuildContextWindowBoundsLength(t *testing.T) {
	var hist []history.Turn
	for i := 0; i < 12; i++ {
		hist = append(hist, history.Turn{UserMessage: "u", BotResponse: "a"})
	}

	for _, w := range []int{1, 3, 5, 20} {
		turns := BuildContextWindow(hist, "new", w)
		limit := w
		if limit > len(hist) {
			limit = len(hist)
		}
		if max := 2*limit + 1; len(turns) > max {
			t.Fatalf("window %d: len(turns) = %d, want <= %d", w, len(turns), max)
		}
		last := turns[len(turns)-1]
		if last.Role != provider.RoleUser || last.Content != "new" {
			t.Fatalf("window %d: last = %+v, want the new user message", w, last)
		}
	}
}

func TestBuildContextWindowDefaultsWindowSize(t *testing.T) {
	var hist []history.Turn
	for i := 0; i < 10; i++ {
		hist = append(hist, history.Turn{UserMessage: "u", BotResponse: "a"})
	}
	turns := BuildContextWindow(hist, "new", 0)
	if want := 2*DefaultWindowSize + 1; len(turns) != want {
		t.Fatalf("len(turns) = %d, want %d", len(turns), want)
	}
}
