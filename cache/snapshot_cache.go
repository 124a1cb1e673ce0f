package cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

const DefaultTTL = 5 * time.Minute

// Clock returns the current time. Tests swap it for a fake.
type Clock func() time.Time

// ── Snapshot cache ───────────────────────────────────────────────────────────
// Holds computed analytics snapshots keyed by selection ("month:2024-02").
// Owned by whoever builds the aggregator; there is no package-level state.

type snapshotEntry struct {
	snapshot  *models.AnalyticsSnapshot
	fetchedAt time.Time
}

type SnapshotCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     Clock
	entries map[string]snapshotEntry
}

// NewSnapshotCache builds a cache. ttl <= 0 falls back to DefaultTTL and a nil
// clock falls back to time.Now.
func NewSnapshotCache(ttl time.Duration, now Clock) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SnapshotCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]snapshotEntry),
	}
}

func (c *SnapshotCache) Get(key string) (*models.AnalyticsSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.snapshot, true
}

func (c *SnapshotCache) Set(key string, snap *models.AnalyticsSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = snapshotEntry{snapshot: snap, fetchedAt: c.now()}
}

// Prune drops expired entries and returns how many were removed.
func (c *SnapshotCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// ── Invalidate everything (call when orders are bulk-imported or re-seeded) ──

func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]snapshotEntry)
	c.mu.Unlock()
}

func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
