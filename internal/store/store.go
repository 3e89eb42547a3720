package store

import (
	"slices"
	"sync"
	"time"

	"github.com/mmcdole/tunepool/internal/domain"
)

// DefaultTTL is the pool lifetime used when NewPoolStore is given none.
const DefaultTTL = 30 * time.Minute

// PoolStore implements domain.PoolStore in memory.
// Entries are swapped wholesale under the lock; item slices are never written
// after being stored.
type PoolStore struct {
	mu      sync.RWMutex
	entries map[string]domain.PoolEntry

	ttl time.Duration
	now func() time.Time
}

// Option configures a PoolStore.
type Option func(*PoolStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *PoolStore) {
		s.now = now
	}
}

// NewPoolStore creates an empty store applying ttl to every key.
func NewPoolStore(ttl time.Duration, opts ...Option) *PoolStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &PoolStore{
		entries: make(map[string]domain.PoolEntry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PoolStore) Get(key string) (domain.PoolEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

func (s *PoolStore) Set(key string, items []domain.Track, resetTimestamp bool) {
	// Own a copy so a caller reusing its slice cannot reach into the cache
	items = slices.Clone(items)

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	if prev, ok := s.entries[key]; ok && !resetTimestamp {
		createdAt = prev.CreatedAt
	}

	s.entries[key] = domain.PoolEntry{
		Key:       key,
		Items:     items,
		CreatedAt: createdAt,
		TTL:       s.ttl,
	}
}

func (s *PoolStore) IsExpired(entry domain.PoolEntry) bool {
	return s.now().Sub(entry.CreatedAt) > entry.TTL
}

func (s *PoolStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

func (s *PoolStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// TTL returns the lifetime applied to every entry.
func (s *PoolStore) TTL() time.Duration {
	return s.ttl
}

// Now returns the store's notion of the current time.
func (s *PoolStore) Now() time.Time {
	return s.now()
}

// Ensure PoolStore implements domain.PoolStore.
var _ domain.PoolStore = (*PoolStore)(nil)
