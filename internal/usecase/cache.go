package usecase

import (
	"sync"
	"time"
)

type cacheEntry struct {
	html      []byte
	expiresAt time.Time
}

type renderCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newRenderCache(ttl time.Duration) *renderCache {
	return &renderCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *renderCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.html, true
}

func (c *renderCache) set(key string, html []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		html:      html,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *renderCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
