// Package memory implements the two layers of selection memory: an
// in-process resolve-once cache and a persistent provider-scoped store.
package memory

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes resolutions per query key with single-flight
// semantics: concurrent callers for the same key block until the first
// resolution completes, then all observe the same cached value. Failed
// resolutions (including cancellations) are not cached, so the key can
// be retried later.
type Cache[V any] struct {
	sf singleflight.Group

	mu      sync.RWMutex
	results map[string]V
}

// NewCache creates an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{results: make(map[string]V)}
}

// Resolve returns the cached value for key, or runs fn exactly once to
// produce it. Callers racing on the same key share a single fn call.
func (c *Cache[V]) Resolve(key string, fn func() (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.sf.Do(key, func() (any, error) {
		// Re-check under the flight: an earlier winner may have
		// populated the key before we acquired it.
		c.mu.RLock()
		v, ok := c.results[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.results[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Get returns the cached value for key without resolving.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.results[key]
	return v, ok
}

// Put stores a value for key, overwriting any previous entry.
func (c *Cache[V]) Put(key string, v V) {
	c.mu.Lock()
	c.results[key] = v
	c.mu.Unlock()
}

// Len returns the number of cached keys.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
