// Package memory holds process-local adapters for state that must not outlive the API process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sngm3741/fitness-directory/api/internal/public/application"
	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// CompareSessionStore implements application.CompareSessionStore in memory.
// Each session owns its own CompareSelection guarded by its own mutex, so
// concurrent requests for different sessions never contend.
type CompareSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	mu        sync.Mutex
	selection *domain.CompareSelection
	expiresAt time.Time
}

// NewCompareSessionStore creates a store whose sessions expire ttl after creation.
func NewCompareSessionStore(ttl time.Duration) *CompareSessionStore {
	return &CompareSessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new empty session.
func (s *CompareSessionStore) Create(_ context.Context) (application.CompareSession, error) {
	now := s.now().UTC()
	session := application.CompareSession{
		ID:        uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{
		selection: domain.NewCompareSelection(),
		expiresAt: session.ExpiresAt,
	}
	s.mu.Unlock()

	return session, nil
}

// Get returns the current snapshot of a session.
func (s *CompareSessionStore) Get(ctx context.Context, id string) (domain.CompareSnapshot, error) {
	return s.Update(ctx, id, func(*domain.CompareSelection) {})
}

// Update runs fn against the session selection under the session lock.
func (s *CompareSessionStore) Update(_ context.Context, id string, fn func(sel *domain.CompareSelection)) (domain.CompareSnapshot, error) {
	entry, ok := s.lookup(id)
	if !ok {
		return domain.CompareSnapshot{}, application.ErrCompareSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.selection)
	return entry.selection.Snapshot(), nil
}

// Delete removes a session.
func (s *CompareSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return application.ErrCompareSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions, expired ones included until evicted.
func (s *CompareSessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictExpired drops every expired session and returns how many were removed.
func (s *CompareSessionStore) EvictExpired() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (s *CompareSessionStore) RunJanitor(ctx context.Context, interval time.Duration, onEvict func(n int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}

func (s *CompareSessionStore) lookup(id string) (*sessionEntry, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, false
	}
	return entry, true
}
