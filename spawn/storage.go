package spawn

import (
	"sort"
	"sync"
)

// Storage is the result slot the host reads published values from.
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key.
func (s *Storage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Storage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Keys returns the stored keys in sorted order.
func (s *Storage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
