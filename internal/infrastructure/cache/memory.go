package cache

import (
	"procurement-search/pkg/cache"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	store *gocache.Cache
}

// NewMemoryStore creates an in-process TTL store.
// defaultTTL: TTL for entries set with cache.DefaultExpiration
// cleanupInterval: how often expired entries are evicted
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) cache.TTLStore {
	return &memoryStore{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *memoryStore) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryStore) Set(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

func (c *memoryStore) Add(key string, value interface{}, ttl time.Duration) bool {
	return c.store.Add(key, value, ttl) == nil
}

func (c *memoryStore) Len() int {
	return c.store.ItemCount()
}
