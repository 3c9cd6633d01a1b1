package middleware

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	resp      *CachedResponse
	expiresAt time.Time
}

// MemoryIdempotencyStore keeps idempotency records in process memory.
type MemoryIdempotencyStore struct {
	mu     sync.Mutex
	items  map[string]memoryEntry
	locks  map[string]time.Time
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewMemoryIdempotencyStore creates a store that sweeps expired records every interval.
func NewMemoryIdempotencyStore(interval time.Duration) *MemoryIdempotencyStore {
	s := &MemoryIdempotencyStore{
		items:  make(map[string]memoryEntry),
		locks:  make(map[string]time.Time),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	if interval > 0 {
		go s.sweepLoop(interval)
	}
	return s
}

func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) (*CachedResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.resp, true, nil
}

func (s *MemoryIdempotencyStore) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if until, held := s.locks[key]; held && now.Before(until) {
		return false, nil
	}
	s.locks[key] = now.Add(ttl)
	return true, nil
}

func (s *MemoryIdempotencyStore) Save(_ context.Context, key string, resp *CachedResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryEntry{resp: resp, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, key)
	return nil
}

// Len returns the number of stored responses, expired or not.
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Stop ends the sweep goroutine.
func (s *MemoryIdempotencyStore) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *MemoryIdempotencyStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryIdempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, key)
		}
	}
	for key, until := range s.locks {
		if now.After(until) {
			delete(s.locks, key)
		}
	}
}
