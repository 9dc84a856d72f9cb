package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ent0n29/amala/internal/chat"
	"github.com/ent0n29/amala/internal/therapy"
)

type chatRequest struct {
	SessionID   string `json:"session_id"`
	Message     string `json:"message"`
	TherapyType string `json:"therapy_type"`
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	reply, err := s.orchestrator.ProcessMessage(r.Context(), req.SessionID, req.Message, req.TherapyType)
	if err != nil {
		var ve *chat.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, "invalid_request", ve.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "processing_failed", "Could not process the message right now.")
		return
	}

	s.sessions.Touch(req.SessionID)
	s.metrics.SetActiveSessions(s.sessions.ActiveCount())

	respondJSON(w, http.StatusOK, reply)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "sessionID is required")
		return
	}

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_request", "limit must be a positive integer")
			return
		}
		limit = n
	}

	turns, err := s.turns.RecentBySession(r.Context(), sessionID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "history_unavailable", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"messages":   turns,
	})
}

func (s *Server) handleTherapies(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"therapies": therapy.Catalog(),
	})
}
