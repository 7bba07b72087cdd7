// Package ratelimit bounds request rates per logical key with a fixed-window
// counter. It is process-local, abuse-deterrence state: windows admit short
// bursts at their boundaries, counters vanish on restart, and nothing is
// shared across instances.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key within fixed windows. Construct one per
// process and inject it wherever throttling is applied; a fresh instance per
// test keeps state isolated.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	// now is injectable for window tests.
	now func() time.Time
}

// New returns an empty limiter.
func New() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow reports whether a request for key may proceed, admitting at most
// limit requests per window. The first request after a window lapses resets
// the counter to 1; denied requests do not mutate state.
func (l *Limiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, ok := l.entries[key]
	if !ok || now.After(record.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		return true
	}

	if record.count >= limit {
		return false
	}
	record.count++
	return true
}
