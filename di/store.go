package di

import (
	"sync"
)

// serviceStore is the append-mostly mapping from service key to encoded
// payload. Each container node owns exactly one store.
//
// Keys are unique within a store: insert rejects duplicates instead of
// overwriting, which is what distinguishes the store from a general map.
// The only bulk mutation is clear, used during container teardown.
type serviceStore struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

func newServiceStore(capacity int) *serviceStore {
	if capacity < 0 {
		capacity = 0
	}
	return &serviceStore{payloads: make(map[string][]byte, capacity)}
}

// insert adds a payload under key. It reports false if the key already
// exists; the uniqueness check and the write are atomic under one lock, so
// concurrent inserts of the same key yield exactly one success.
func (s *serviceStore) insert(key string, payload []byte) bool {
	// Payloads are immutable once stored; copy so later caller mutation of
	// the slice cannot reach the store.
	owned := make([]byte, len(payload))
	copy(owned, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payloads[key]; exists {
		return false
	}
	s.payloads[key] = owned
	return true
}

// get returns a copy of the payload for key.
func (s *serviceStore) get(key string) ([]byte, bool) {
	s.mu.RLock()
	payload, ok := s.payloads[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true
}

// contains reports whether key exists, without copying.
func (s *serviceStore) contains(key string) bool {
	s.mu.RLock()
	_, ok := s.payloads[key]
	s.mu.RUnlock()
	return ok
}

// len reports the number of locally stored payloads.
func (s *serviceStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payloads)
}

// keys returns the locally stored keys in unspecified order.
func (s *serviceStore) keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.payloads))
	for k := range s.payloads {
		out = append(out, k)
	}
	return out
}

// clear drops every payload. Used only by container teardown.
func (s *serviceStore) clear() {
	s.mu.Lock()
	s.payloads = make(map[string][]byte)
	s.mu.Unlock()
}
