package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ent0n29/amala/internal/chat"
)

// wsChatFrame is one inbound websocket message. Replies are full chat.Reply
// frames: the socket carries whole turns, not token deltas.
type wsChatFrame struct {
	Message     string `json:"message"`
	TherapyType string `json:"therapy_type"`
}

func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "session_id query parameter is required")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	defer conn.Close()

	for {
		var frame wsChatFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		reply, err := s.orchestrator.ProcessMessage(r.Context(), sessionID, frame.Message, frame.TherapyType)
		if err != nil {
			var ve *chat.ValidationError
			code := "processing_failed"
			message := "Could not process the message right now."
			if errors.As(err, &ve) {
				code = "invalid_request"
				message = ve.Error()
			}
			if err := conn.WriteJSON(errorResponse{Error: message, Code: code}); err != nil {
				return
			}
			continue
		}

		s.sessions.Touch(sessionID)
		s.metrics.SetActiveSessions(s.sessions.ActiveCount())

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
