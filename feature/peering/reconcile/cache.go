package reconcile

import (
	"context"
	"strconv"
	"sync"
	"time"

	"peerdiff/feature/peering/models"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	info  models.AsInfo
	built time.Time
}

// InfoCache memoizes successful AsInfo lookups.
// Concurrent lookups for the same ASN share one registry query. The shared
// query ignores caller cancellation and is bounded by the registry client timeout.
type InfoCache struct {
	lookup InfoLookup
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

// NewInfoCache wraps lookup. A zero ttl never expires entries.
func NewInfoCache(lookup InfoLookup, ttl time.Duration) *InfoCache {
	return &InfoCache{
		lookup:  lookup,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *InfoCache) expired(e cacheEntry) bool {
	return c.ttl > 0 && time.Since(e.built) > c.ttl
}

// LookupAsInfo returns a cached answer or queries the wrapped lookup.
// Failed lookups are not cached.
func (c *InfoCache) LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error) {
	key := selfAsno + "|" + strconv.FormatUint(uint64(asn), 10)

	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !c.expired(e) {
		return e.info, nil
	}

	// The shared query must outlive any single caller; each caller still honours its own ctx.
	shared := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		info, err := c.lookup.LookupAsInfo(shared, asn, selfAsno)
		if err != nil {
			return info, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{info: info, built: time.Now()}
		c.mu.Unlock()

		return info, nil
	})

	select {
	case res := <-ch:
		info, _ := res.Val.(models.AsInfo)
		return info, res.Err
	case <-ctx.Done():
		return models.AsInfo{AnnouncedSet: models.AnySet}, ctx.Err()
	}
}

// Invalidate drops every cached entry.
func (c *InfoCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
