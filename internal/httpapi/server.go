package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ent0n29/amala/internal/chat"
	"github.com/ent0n29/amala/internal/checkin"
	"github.com/ent0n29/amala/internal/config"
	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/observability"
	"github.com/ent0n29/amala/internal/session"
)

// Orchestrator is the chat engine consumed by the transport layer.
type Orchestrator interface {
	ProcessMessage(ctx context.Context, sessionID, message, requestedTopic string) (chat.Reply, error)
}

type Server struct {
	cfg          config.Config
	orchestrator Orchestrator
	turns        history.Store
	checkins     *checkin.Service
	sessions     *session.Registry
	metrics      *observability.Metrics
	upgrader     websocket.Upgrader
}

func New(cfg config.Config, orchestrator Orchestrator, turns history.Store, checkins *checkin.Service, sessions *session.Registry, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
		turns:        turns,
		checkins:     checkins,
		sessions:     sessions,
		metrics:      metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				// Default: only allow browser websocket connections from the
				// same origin, so other sites cannot drive a user's chat
				// session if the service is ever exposed beyond localhost.
				if cfg.AllowAnyOrigin {
					return true
				}
				origin := strings.TrimSpace(r.Header.Get("Origin"))
				if origin == "" {
					// Non-browser clients often omit Origin. Allow them.
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				if u.Scheme != "http" && u.Scheme != "https" {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/v1/chat/message", s.handleChatMessage)
	r.Get("/v1/chat/history/{sessionID}", s.handleChatHistory)
	r.Get("/v1/chat/therapies", s.handleTherapies)
	r.Get("/v1/chat/ws", s.handleChatWS)

	r.Post("/v1/checkins", s.handleCreateCheckIn)
	r.Get("/v1/checkins/{userID}", s.handleCheckInHistory)
	r.Get("/v1/checkins/{userID}/today", s.handleCheckInToday)
	r.Get("/v1/checkins/{userID}/stats", s.handleCheckInStats)
	r.Delete("/v1/checkins/{userID}/{date}", s.handleDeleteCheckIn)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "ready",
		"active_sessions": s.sessions.ActiveCount(),
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = errors.New("request body is empty")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "eof") {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
