package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. Records expire lazily on lookup and in
// bulk through Sweep. It is meant for single-instance deployments and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // key -> expires at
	nowFn   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs a MemoryStore. A nil nowFn uses time.Now.
func NewMemoryStore(nowFn func() time.Time) *MemoryStore {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]time.Time),
		nowFn:   nowFn,
	}
}

func (s *MemoryStore) Put(_ context.Context, key string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = s.nowFn().Add(ttl)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	now := s.nowFn()

	s.mu.RLock()
	exp, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if now.Before(exp) {
		return true, nil
	}

	// Expired; drop it unless someone re-put the key meanwhile.
	s.mu.Lock()
	if cur, ok := s.entries[key]; ok && !now.Before(cur) {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	return false, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Sweep removes every expired record and returns how many were dropped.
func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored records, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
