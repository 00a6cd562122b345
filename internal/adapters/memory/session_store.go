package memory

import (
	"context"
	"sync"

	"listing-service/internal/core/domain"
)

// SessionStore keeps per-session filter state in memory. A session that
// was never written reads as empty filters; replacing is wholesale.
type SessionStore struct {
	mu      sync.RWMutex
	filters map[string]domain.ListingFilters
}

func NewSessionStore() *SessionStore {
	return &SessionStore{filters: make(map[string]domain.ListingFilters)}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (domain.ListingFilters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// The zero value is the empty filter state, so an unknown session
	// simply has no constraints yet.
	return s.filters[sessionID], nil
}

func (s *SessionStore) Replace(ctx context.Context, sessionID string, next domain.ListingFilters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[sessionID] = next
	return nil
}

func (s *SessionStore) ClearField(ctx context.Context, sessionID string, field domain.FilterField) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.filters[sessionID]
	if err := current.Clear(field); err != nil {
		return err
	}
	s.filters[sessionID] = current
	return nil
}
