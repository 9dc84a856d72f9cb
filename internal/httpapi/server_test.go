package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ent0n29/amala/internal/chat"
	"github.com/ent0n29/amala/internal/checkin"
	"github.com/ent0n29/amala/internal/config"
	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/session"
)

type stubOrchestrator struct {
	reply chat.Reply
	err   error
	calls int
}

func (s *stubOrchestrator) ProcessMessage(_ context.Context, sessionID, message, requestedTopic string) (chat.Reply, error) {
	s.calls++
	if s.err != nil {
		return chat.Reply{}, s.err
	}
	reply := s.reply
	reply.SessionID = sessionID
	return reply, nil
}

func newTestServer(orch Orchestrator) (*Server, history.Store) {
	turns := history.NewInMemoryStore()
	checkins := checkin.NewService(checkin.NewInMemoryStore())
	sessions := session.NewRegistry(time.Minute)
	srv := New(config.Config{}, orch, turns, checkins, sessions, nil)
	return srv, turns
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestChatMessageReturnsReply(t *testing.T) {
	orch := &stubOrchestrator{reply: chat.Reply{
		Message:     "Breathing exercises can help with that.",
		Topic:       "meditation",
		Sentiment:   "neutral",
		Suggestions: []string{"Try a body scan"},
		Timestamp:   "2026-03-01T10:30:00",
	}}
	srv, _ := newTestServer(orch)

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/chat/message", map[string]string{
		"session_id": "s1",
		"message":    "I feel stressed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var reply chat.Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.SessionID != "s1" {
		t.Fatalf("SessionID = %q, want s1", reply.SessionID)
	}
	if reply.Topic != "meditation" {
		t.Fatalf("Topic = %q, want meditation", reply.Topic)
	}
	if srv.sessions.ActiveCount() != 1 {
		t.Fatalf("ActiveCount() = %d, want 1", srv.sessions.ActiveCount())
	}
}

func TestChatMessageValidationError(t *testing.T) {
	orch := &stubOrchestrator{err: &chat.ValidationError{Reason: "message must not be empty"}}
	srv, _ := newTestServer(orch)

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/chat/message", map[string]string{
		"session_id": "s1",
		"message":    "   ",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_request") {
		t.Fatalf("body = %s, want invalid_request code", rec.Body.String())
	}
}

func TestChatMessageProcessingFailure(t *testing.T) {
	orch := &stubOrchestrator{err: &chat.ProcessingError{Step: "primary_completion", Err: errors.New("boom")}}
	srv, _ := newTestServer(orch)

	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/chat/message", map[string]string{
		"session_id": "s1",
		"message":    "hello",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if srv.sessions.ActiveCount() != 0 {
		t.Fatalf("failed turn must not register the session")
	}
}

func TestChatMessageEmptyBody(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/message", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatHistoryReturnsStoredTurns(t *testing.T) {
	srv, turns := newTestServer(&stubOrchestrator{})
	ctx := context.Background()
	for _, msg := range []string{"first", "second"} {
		if _, err := turns.Save(ctx, history.Turn{SessionID: "s1", UserMessage: msg, BotResponse: "ok", Topic: "general", Sentiment: "neutral"}); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/chat/history/s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		SessionID string         `json:"session_id"`
		Messages  []history.Turn `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(payload.Messages))
	}
	if payload.Messages[0].UserMessage != "first" {
		t.Fatalf("Messages[0] = %q, want oldest first", payload.Messages[0].UserMessage)
	}
}

func TestChatHistoryRejectsBadLimit(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/chat/history/s1?limit=nope", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTherapiesCatalog(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/chat/therapies", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload struct {
		Therapies []struct {
			Type string `json:"type"`
		} `json:"therapies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Therapies) == 0 {
		t.Fatalf("catalog must not be empty")
	}
}

func TestCheckInLifecycle(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/v1/checkins", map[string]any{
		"user_id":       "u1",
		"emotion":       "calm",
		"energy_level":  7,
		"sleep_quality": 8,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/checkins/u1/today", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("today status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/checkins/u1/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var stats checkin.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalCheckIns != 1 || stats.Streak != 1 {
		t.Fatalf("stats = %+v, want 1 check-in and streak 1", stats)
	}

	today := time.Now().Format(checkin.DateLayout)
	rec = doJSON(t, router, http.MethodDelete, "/v1/checkins/u1/"+today, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/checkins/u1/today", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("today after delete status = %d, want 404", rec.Code)
	}
}

func TestCreateCheckInRejectsOutOfRange(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/v1/checkins", map[string]any{
		"user_id":       "u1",
		"emotion":       "tired",
		"energy_level":  0,
		"sleep_quality": 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckInHistoryRejectsBadDays(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	rec := doJSON(t, srv.Router(), http.MethodGet, "/v1/checkins/u1?days=-3", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(&stubOrchestrator{})
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doJSON(t, srv.Router(), http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, rec.Code)
		}
	}
}
