package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      []byte
	insertedAt time.Time
}

// Memory is an in-process Store with a fixed TTL per entry.
//
// Expiry is checked lazily on Get; an expired entry is deleted at that
// point and reported as a miss. There is no background sweep and no
// capacity bound. All methods are safe for concurrent use and never
// return a non-nil error.
type Memory struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]memoryEntry

	// now is overridable for expiry tests.
	now func() time.Time
}

// NewMemory creates an in-memory store whose entries expire ttl after
// insertion.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the value stored under key if it has not expired. An
// expired entry is deleted and reported as a miss; a true miss has no
// side effect.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		Misses.Inc()
		return nil, false, nil
	}

	if m.now().Sub(entry.insertedAt) > m.ttl {
		delete(m.entries, key)
		Misses.Inc()
		return nil, false, nil
	}

	Hits.WithLabelValues("memory").Inc()
	return entry.value, true, nil
}

// Set stores value under key with the current timestamp, overwriting any
// prior entry and resetting its TTL clock.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{value: value, insertedAt: m.now()}
	return nil
}

// Clear removes all entries.
func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]memoryEntry)
	return nil
}

// Size returns the number of stored entries, including expired ones that
// have not been purged by a read yet.
func (m *Memory) Size(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries), nil
}
