package cache

import "time"

// TTLStore is a keyed store whose entries expire after a duration.
type TTLStore interface {
	// Get retrieves a value, reporting whether it was present and unexpired.
	Get(key string) (interface{}, bool)

	// Set stores a value, replacing any existing entry and resetting its TTL.
	Set(key string, value interface{}, ttl time.Duration)

	// Add stores a value only if the key is absent. It returns false otherwise.
	Add(key string, value interface{}, ttl time.Duration) bool

	// Len returns the number of entries, including expired ones not yet evicted.
	Len() int
}
