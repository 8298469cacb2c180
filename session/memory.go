package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      map[string]any
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance and for tests; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (map[string]any, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return map[string]any{}, nil
	}
	// Copy so callers never mutate the stored map directly.
	data := make(map[string]any, len(entry.data))
	for k, v := range entry.data {
		data[k] = v
	}
	return data, nil
}

func (s *MemoryStore) Set(_ context.Context, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memoryEntry{data: data, expiresAt: time.Now().Add(TTL)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
