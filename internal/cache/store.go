package cache

import "time"

// Store is a byte-oriented cache with per-key TTL. Implementations must make
// Set and Delete atomic per key; Delete of an absent key is a no-op.
type Store interface {
	// Get returns the cached value and whether the key was present.
	Get(key string) ([]byte, bool, error)

	// Set stores a value under key with the given TTL.
	Set(key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(keys ...string) error
}
