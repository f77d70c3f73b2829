// Package ratelimit provides the in-process fixed-window request counter
// used by the rate-limiting middleware. One window is kept per client key;
// the count resets when the window elapses.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int64
}

// MemoryStore is a mutex-guarded fixed-window counter. Increments are
// atomic per key, so concurrent bursts cannot slip past the configured
// maximum through a read-then-write race.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Incr counts one request against key's current window, starting a fresh
// window when the previous one has elapsed.
func (s *MemoryStore) Incr(_ context.Context, key string, windowDur time.Duration) (int64, time.Duration, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= windowDur {
		w = &window{start: now}
		s.windows[key] = w
	}
	w.count++

	return w.count, w.start.Add(windowDur).Sub(now), nil
}

// Forgive undoes one counted request in the current window, if any.
func (s *MemoryStore) Forgive(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.windows[key]; ok && w.count > 0 {
		w.count--
	}
	return nil
}
