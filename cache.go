package culture

import (
	"sync"

	"go.uber.org/atomic"
)

// onceEntry holds one memoized value. done is only set once build returns,
// so a build that panics leaves the entry empty for the next caller.
type onceEntry[V any] struct {
	mu    sync.Mutex
	done  bool
	value V
}

func (e *onceEntry[V]) get(build func() V) V {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.done {
		e.value = build()
		e.done = true
	}
	return e.value
}

// onceMap memoizes one value per key. The map mutex only covers the
// check-then-insert; builds run under the entry's own lock, and concurrent
// callers for the same key wait on that entry.
type onceMap[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*onceEntry[V]
}

func (m *onceMap[K, V]) getOrBuild(key K, build func() V) (V, bool) {
	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[K]*onceEntry[V])
	}
	entry, found := m.entries[key]
	if !found {
		entry = &onceEntry[V]{}
		m.entries[key] = entry
	}
	m.mu.Unlock()

	return entry.get(build), found
}

func (m *onceMap[K, V]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *onceMap[K, V]) reset() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

// cacheCounters are the lock-free counters behind Engine.Stats.
type cacheCounters struct {
	hits   *atomic.Int64
	misses *atomic.Int64
	builds *atomic.Int64
}

func newCacheCounters() cacheCounters {
	return cacheCounters{
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
		builds: atomic.NewInt64(0),
	}
}

func (c cacheCounters) lookup(hit bool) {
	if hit {
		c.hits.Inc()
		return
	}
	c.misses.Inc()
}

func (c cacheCounters) reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.builds.Store(0)
}

// Stats is a snapshot of cache activity.
type Stats struct {
	CultureHits     int64
	CultureMisses   int64
	CultureBuilds   int64
	CultureRecords  int
	CalendarHits    int64
	CalendarMisses  int64
	CalendarBuilds  int64
	CalendarRecords int
}
