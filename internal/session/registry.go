// Package session tracks which chat sessions have been active recently.
// Sessions are created implicitly by their first message; expiry only
// forgets registry state, never persisted history.
package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	firstSeenAt    time.Time
	lastActivityAt time.Time
	turns          int
}

// Registry is a concurrency-safe activity map with an inactivity janitor.
type Registry struct {
	mu                sync.RWMutex
	entries           map[string]*entry
	inactivityTimeout time.Duration
	onExpire          func(sessionID string)
}

func NewRegistry(inactivityTimeout time.Duration) *Registry {
	if inactivityTimeout <= 0 {
		inactivityTimeout = 30 * time.Minute
	}
	return &Registry{
		entries:           make(map[string]*entry),
		inactivityTimeout: inactivityTimeout,
	}
}

func (r *Registry) SetExpireHook(hook func(sessionID string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onExpire = hook
}

// Touch records activity for a session, creating it on first use.
func (r *Registry) Touch(sessionID string) {
	now := time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, found := r.entries[sessionID]
	if !found {
		e = &entry{firstSeenAt: now}
		r.entries[sessionID] = e
	}
	e.lastActivityAt = now
	e.turns++
}

func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// StartJanitor expires inactive sessions until ctx is cancelled.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.expireIdle()
			}
		}
	}()
}

func (r *Registry) expireIdle() {
	now := time.Now().UTC()
	var expired []string

	r.mu.Lock()
	for id, e := range r.entries {
		if now.Sub(e.lastActivityAt) > r.inactivityTimeout {
			expired = append(expired, id)
			delete(r.entries, id)
		}
	}
	hook := r.onExpire
	r.mu.Unlock()

	if hook == nil {
		return
	}
	for _, id := range expired {
		hook(id)
	}
}
