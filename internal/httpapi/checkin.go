package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ent0n29/amala/internal/checkin"
)

type checkInRequest struct {
	UserID       string `json:"user_id"`
	Date         string `json:"checkin_date"`
	Emotion      string `json:"emotion"`
	EnergyLevel  int    `json:"energy_level"`
	SleepQuality int    `json:"sleep_quality"`
	Notes        string `json:"notes"`
}

func (s *Server) handleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	rec, err := s.checkins.CreateOrUpdate(r.Context(), checkin.Record{
		UserID:       req.UserID,
		Date:         req.Date,
		Emotion:      req.Emotion,
		EnergyLevel:  req.EnergyLevel,
		SleepQuality: req.SleepQuality,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCheckInToday(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "userID is required")
		return
	}

	rec, found, err := s.checkins.Today(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "checkin_unavailable", err.Error())
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "checkin_not_found", "no check-in for today")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCheckInHistory(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "userID is required")
		return
	}
	days, ok := daysParam(w, r)
	if !ok {
		return
	}

	records, err := s.checkins.History(r.Context(), userID, days)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "checkin_unavailable", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user_id":  userID,
		"checkins": records,
	})
}

func (s *Server) handleCheckInStats(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "userID is required")
		return
	}
	days, ok := daysParam(w, r)
	if !ok {
		return
	}

	stats, err := s.checkins.Stats(r.Context(), userID, days)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "checkin_unavailable", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	date := strings.TrimSpace(chi.URLParam(r, "date"))
	if userID == "" || date == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "userID and date are required")
		return
	}

	deleted, err := s.checkins.Delete(r.Context(), userID, date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "checkin_not_found", "no check-in for that date")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func daysParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("days"))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "days must be a non-negative integer")
		return 0, false
	}
	return n, true
}
