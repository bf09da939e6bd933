package store

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore keeps analyses in process memory. It is the default when no
// database is configured.
type MemoryStore struct {
	mu            sync.RWMutex
	byID          map[string]*Analysis
	byFingerprint map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:          map[string]*Analysis{},
		byFingerprint: map[string]string{},
	}
}

func (s *MemoryStore) Save(_ context.Context, a *Analysis) error {
	if a == nil || a.ID == "" {
		return errors.New("analysis id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.Fingerprint != "" {
		if id, ok := s.byFingerprint[a.Fingerprint]; ok {
			*a = *s.byID[id]
			return nil
		}
		s.byFingerprint[a.Fingerprint] = a.ID
	}
	stored := *a
	s.byID[a.ID] = &stored
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *a
	return &out, nil
}

func (s *MemoryStore) FindByFingerprint(ctx context.Context, fingerprint string) (*Analysis, error) {
	s.mu.RLock()
	id, ok := s.byFingerprint[fingerprint]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}
