// Package memory provides in-memory persistence adapters used for
// development and testing when no external services are available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dishcovery/v1/internal/ports/outbound"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e *cacheEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// CacheRepository is a process-local cache with TTL support.
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	done    chan struct{}
}

// NewCacheRepository creates an in-memory cache and starts its
// expiration sweeper.
func NewCacheRepository() *CacheRepository {
	c := &CacheRepository{
		entries: make(map[string]*cacheEntry),
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached value for key, or ErrNotFound on miss.
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.expired() {
		return nil, outbound.ErrNotFound
	}
	return entry.value, nil
}

// Set stores value under key. A zero ttl means no expiration.
func (c *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := &cacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes key from the cache.
func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists reports whether key holds a live entry.
func (c *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !entry.expired(), nil
}

// Close stops the expiration sweeper.
func (c *CacheRepository) Close() {
	close(c.done)
}

func (c *CacheRepository) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.expired() {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
