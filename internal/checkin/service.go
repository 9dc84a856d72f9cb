package checkin

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Service validates and aggregates check-ins on top of a Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateOrUpdate records a check-in for the given day, updating the existing
// record when the user already checked in. An empty date means today.
func (s *Service) CreateOrUpdate(ctx context.Context, rec Record) (Record, error) {
	rec.UserID = strings.TrimSpace(rec.UserID)
	if rec.UserID == "" {
		return Record{}, fmt.Errorf("user_id must not be empty")
	}
	if rec.Date == "" {
		rec.Date = s.now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, rec.Date); err != nil {
		return Record{}, fmt.Errorf("checkin_date must be YYYY-MM-DD: %w", err)
	}
	if rec.EnergyLevel < 1 || rec.EnergyLevel > 10 {
		return Record{}, fmt.Errorf("energy_level must be in [1, 10]")
	}
	if rec.SleepQuality < 1 || rec.SleepQuality > 10 {
		return Record{}, fmt.Errorf("sleep_quality must be in [1, 10]")
	}

	return s.store.Upsert(ctx, rec)
}

// Today returns the user's check-in for the current date, if any.
func (s *Service) Today(ctx context.Context, userID string) (Record, bool, error) {
	return s.store.FindByUserAndDate(ctx, userID, s.now().Format(DateLayout))
}

// History lists a user's check-ins, newest first. days <= 0 means all.
func (s *Service) History(ctx context.Context, userID string, days int) ([]Record, error) {
	return s.store.FindByUser(ctx, userID, days)
}

// Delete removes the check-in for the given date; reports whether one existed.
func (s *Service) Delete(ctx context.Context, userID, date string) (bool, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return false, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return s.store.Delete(ctx, userID, date)
}

// Stats computes averages, totals and the consecutive-day streak ending
// today over the user's history (optionally bounded to the past days).
func (s *Service) Stats(ctx context.Context, userID string, days int) (Stats, error) {
	records, err := s.store.FindByUser(ctx, userID, days)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	if len(records) == 0 {
		return stats, nil
	}

	var sumEnergy, sumSleep float64
	for _, rec := range records {
		sumEnergy += float64(rec.EnergyLevel)
		sumSleep += float64(rec.SleepQuality)
	}
	count := float64(len(records))
	stats.AverageEnergy = math.Round(sumEnergy/count*10) / 10
	stats.AverageSleep = math.Round(sumSleep/count*10) / 10
	stats.TotalCheckIns = len(records)
	stats.LastCheckIn = records[0].Date
	stats.Streak = s.streak(records)

	return stats, nil
}

// streak counts consecutive checked-in days walking back from today.
// records must be sorted newest date first.
func (s *Service) streak(records []Record) int {
	streak := 0
	expected := s.now()
	for _, rec := range records {
		if rec.Date != expected.Format(DateLayout) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
