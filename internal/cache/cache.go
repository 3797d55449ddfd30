package cache

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/gat/internal/models"
)

// Cache holds catalog listings keyed by fetch path, each stamped with its
// store time. Entries past the expiration interval read as absent but are
// never swept; a later Put simply replaces them. The key space is bounded
// by the distinct remote paths visited in a session.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	descriptors []models.Descriptor
	storedAt    time.Time
}

// New creates a cache whose expiration interval is fixed for its lifetime.
func New(ttlSeconds int) *Cache {
	return &Cache{
		ttl:     time.Duration(ttlSeconds) * time.Second,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached listing for key. An expired entry behaves exactly
// like a missing one. Side-effect free.
func (c *Cache) Get(key string) ([]models.Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.descriptors, true
}

// Put stores value under key, replacing any prior entry.
func (c *Cache) Put(key string, value []models.Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{descriptors: value, storedAt: c.now()}
}

// Len reports how many entries are physically stored, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SetClockForTest overrides the time source.
func (c *Cache) SetClockForTest(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
