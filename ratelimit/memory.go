package ratelimit

import (
	"context"
	"sync"
	"time"
)

// cleanupEvery throttles the expired-entry sweep. The sweep is a
// tidiness measure only: an expired entry that has not been swept yet is
// still treated as a fresh window on its next access.
const cleanupEvery = 5 * time.Minute

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryStore is an in-process sliding-window counter keyed by caller
// identity. Suitable for single-node deployments; multi-node deployments
// should share a RedisStore instead.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*entry
	lastSweep time.Time
	clock     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		clock:   time.Now,
	}
}

// newMemoryStoreWithClock is used by tests to drive the window manually.
func newMemoryStoreWithClock(clock func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		clock:   clock,
	}
}

// Check implements Store. The first request for a key, or a request after
// its window elapsed, opens a new window with count 1; requests inside an
// active window increment the count until the limit is reached.
func (s *MemoryStore) Check(_ context.Context, key string, cfg Config) (Decision, error) {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) >= cfg.Interval {
		s.entries[key] = &entry{count: 1, windowStart: now}
		s.maybeSweep(now, cfg.Interval)
		return Decision{
			Allowed:   true,
			Remaining: cfg.Limit - 1,
			ResetIn:   cfg.Interval,
		}, nil
	}

	resetIn := e.windowStart.Add(cfg.Interval).Sub(now)
	if e.count >= cfg.Limit {
		return Decision{Allowed: false, Remaining: 0, ResetIn: resetIn}, nil
	}

	e.count++
	return Decision{
		Allowed:   true,
		Remaining: cfg.Limit - e.count,
		ResetIn:   resetIn,
	}, nil
}

// maybeSweep drops entries whose window has expired, at most once per
// cleanup interval. Caller holds the mutex.
func (s *MemoryStore) maybeSweep(now time.Time, interval time.Duration) {
	if now.Sub(s.lastSweep) < cleanupEvery {
		return
	}
	s.lastSweep = now

	for key, e := range s.entries {
		if now.Sub(e.windowStart) >= interval {
			delete(s.entries, key)
		}
	}
}
