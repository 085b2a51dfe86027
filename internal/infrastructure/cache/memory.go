package cache

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/autocare-api/internal/application/analytics"
)

type memoryEntry struct {
	payload   *analytics.Payload
	expiresAt time.Time
}

// MemoryCache is an in-process payload cache with lazy expiry. Expired entries are
// treated as absent on read and stay in the map until overwritten.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty cache. now defaults to time.Now.
func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get returns the live payload stored under key
func (c *MemoryCache) Get(_ context.Context, key string) (*analytics.Payload, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.payload, true, nil
}

// Set stores payload under key until now+ttl, replacing any previous entry
func (c *MemoryCache) Set(_ context.Context, key string, payload *analytics.Payload, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
