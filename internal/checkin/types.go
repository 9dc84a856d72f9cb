// Package checkin implements the daily wellbeing check-in: one record per
// user per day with emotion, energy and sleep scores, plus simple aggregate
// statistics over the history.
package checkin

import (
	"context"
	"time"
)

// DateLayout is the wire and storage format of check-in dates.
const DateLayout = "2006-01-02"

// Record is one user's check-in for one day. The user/date pair is unique;
// checking in again the same day updates the existing record.
type Record struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"checkin_date"`
	Emotion      string    `json:"emotion"`
	EnergyLevel  int       `json:"energy_level"`
	SleepQuality int       `json:"sleep_quality"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Stats aggregates a user's check-in history.
type Stats struct {
	AverageEnergy float64 `json:"average_energy"`
	AverageSleep  float64 `json:"average_sleep"`
	TotalCheckIns int     `json:"total_checkins"`
	Streak        int     `json:"streak"`
	LastCheckIn   string  `json:"last_checkin,omitempty"`
}

// Store persists check-in records.
type Store interface {
	Upsert(ctx context.Context, rec Record) (Record, error)
	FindByUserAndDate(ctx context.Context, userID, date string) (Record, bool, error)
	// FindByUser returns records newest date first. lastDays <= 0 means the
	// whole history; otherwise only dates within the past lastDays days.
	FindByUser(ctx context.Context, userID string, lastDays int) ([]Record, error)
	Delete(ctx context.Context, userID, date string) (bool, error)
	Close() error
}
