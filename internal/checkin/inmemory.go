package checkin

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore is a simple in-process check-in store for local/dev use.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[string]Record
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]map[string]Record),
		now:     time.Now,
	}
}

func (s *InMemoryStore) Upsert(_ context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate := s.records[rec.UserID]
	if byDate == nil {
		byDate = make(map[string]Record)
		s.records[rec.UserID] = byDate
	}

	now := s.now().UTC()
	if existing, found := byDate[rec.Date]; found {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	byDate[rec.Date] = rec
	return rec, nil
}

func (s *InMemoryStore) FindByUserAndDate(_ context.Context, userID, date string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, found := s.records[userID][date]
	return rec, found, nil
}

func (s *InMemoryStore) FindByUser(_ context.Context, userID string, lastDays int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cutoff string
	if lastDays > 0 {
		cutoff = s.now().AddDate(0, 0, -lastDays).Format(DateLayout)
	}

	out := make([]Record, 0, len(s.records[userID]))
	for date, rec := range s.records[userID] {
		if cutoff != "" && date < cutoff {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.records[userID][date]; !found {
		return false, nil
	}
	delete(s.records[userID], date)
	return true, nil
}

func (s *InMemoryStore) Close() error { return nil }
