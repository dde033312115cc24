package application

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/golang/groupcache/singleflight"
)

// renderCache memoizes expensive renders by key for a fixed time. Concurrent
// misses on the same key share one render. Errors are never cached.
type renderCache struct {
	mu      sync.Mutex
	entries *lru.Cache
	group   singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value   any
	expires time.Time
}

func newRenderCache(maxEntries int, ttl time.Duration) *renderCache {
	return &renderCache{
		entries: lru.New(maxEntries),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns the cached value for key, calling render on a miss or after
// the entry has expired.
func (c *renderCache) get(key string, render func() (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	return c.group.Do(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := render()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries.Add(key, cacheEntry{value: v, expires: c.now().Add(c.ttl)})
		c.mu.Unlock()
		return v, nil
	})
}

func (c *renderCache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	e := raw.(cacheEntry)
	if !c.now().Before(e.expires) {
		c.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}
