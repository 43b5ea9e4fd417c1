package cache

import (
	"context"
	"sync"
	"time"

	appmapping "github.com/shopadmin/backend/internal/application/mapping"
	"github.com/shopadmin/backend/internal/domain/taxonomy"
)

// InMemoryTreeCache implements VendorTreeCache with process-local storage.
// Suitable for single-instance deployments and tests; distributed setups
// should use RedisTreeCache so invalidation reaches every instance.
type InMemoryTreeCache struct {
	mu      sync.RWMutex
	entries map[string]treeEntry
	ttl     time.Duration
}

type treeEntry struct {
	forest    taxonomy.Forest
	expiresAt time.Time
}

// NewInMemoryTreeCache creates a new in-memory vendor tree cache
func NewInMemoryTreeCache(ttl time.Duration) *InMemoryTreeCache {
	if ttl <= 0 {
		ttl = defaultTreeTTL
	}
	return &InMemoryTreeCache{
		entries: make(map[string]treeEntry),
		ttl:     ttl,
	}
}

// Get returns the cached forest for a vendor, if present and not expired
func (c *InMemoryTreeCache) Get(_ context.Context, vendorCode string) (taxonomy.Forest, bool) {
	c.mu.RLock()
	entry, ok := c.entries[vendorCode]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.forest, true
}

// Set stores the forest for a vendor
func (c *InMemoryTreeCache) Set(_ context.Context, vendorCode string, forest taxonomy.Forest) {
	c.mu.Lock()
	c.entries[vendorCode] = treeEntry{
		forest:    forest,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Invalidate drops the cached forest for a vendor
func (c *InMemoryTreeCache) Invalidate(_ context.Context, vendorCode string) {
	c.mu.Lock()
	delete(c.entries, vendorCode)
	c.mu.Unlock()
}

// Ensure InMemoryTreeCache implements VendorTreeCache
var _ appmapping.VendorTreeCache = (*InMemoryTreeCache)(nil)
