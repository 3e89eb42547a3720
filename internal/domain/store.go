package domain

import "time"

// PoolStore holds built pools keyed by cache key.
// Implementations must replace entries wholesale so concurrent readers never
// observe a partially written pool.
type PoolStore interface {
	// Get returns the entry stored under key. No side effects.
	Get(key string) (PoolEntry, bool)

	// Set replaces the entry under key. CreatedAt becomes now when resetTimestamp
	// is true or no entry exists yet; otherwise it is carried over.
	Set(key string, items []Track, resetTimestamp bool)

	// IsExpired reports whether the entry has outlived its TTL.
	IsExpired(entry PoolEntry) bool

	// Clear removes the entry under key.
	Clear(key string)

	// Keys lists the stored keys in sorted order.
	Keys() []string

	// Now is the clock IsExpired measures against.
	Now() time.Time
}
