package store

import "sync"

// MemoryTokenStore is an in-memory domain.TokenStore. It models the durable
// browser key-value store the connect flow persists tokens into: entries
// survive across flow restarts within the process lifetime.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryTokenStore creates an empty token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{entries: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryTokenStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.entries[key]
	return value, found
}

// Set stores value under key, replacing any previous value.
func (s *MemoryTokenStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
}
