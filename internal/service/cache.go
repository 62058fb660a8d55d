// Package service contains the business logic for the packaging service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/metrics"
	"github.com/warewise/packaging-service/internal/service/cache"
)

// ShardedCache caches packaging snapshots per product, spread across
// multiple shards so concurrent catalog resolutions do not contend on a
// single lock.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache creates a sharded cache with the given total capacity
// and TTL. numShards is rounded up to a power of 2 so shard selection
// stays a mask instead of a modulo.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (sc *ShardedCache) getShard(productID string) *ttlCache {
	h := fnv.New32a()
	h.Write([]byte(productID))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a packaging snapshot from the appropriate shard.
func (sc *ShardedCache) Get(productID string) ([]model.PackagingType, bool) {
	return sc.getShard(productID).Get(productID)
}

// Set stores a packaging snapshot in the appropriate shard.
func (sc *ShardedCache) Set(productID string, types []model.PackagingType) {
	sc.getShard(productID).Set(productID, types)
}

// Invalidate removes a product from the appropriate shard.
func (sc *ShardedCache) Invalidate(productID string) {
	sc.getShard(productID).Invalidate(productID)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop shuts down the cleanup goroutines of all shards.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns metrics aggregated across all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache with TTL expiration. LRU eviction
// bounds memory while the TTL ages out stale snapshots that stay
// popular. It implements the cache.Cache interface.
type ttlCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry
	stopCh   chan struct{}

	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       string
	value     []model.PackagingType
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a TTL LRU cache and starts its background cleanup
// goroutine.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Stop terminates the cleanup goroutine.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns current cache performance counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a snapshot if it exists and has not expired. Expired
// entries are removed on access rather than waiting for the cleanup
// tick.
func (c *ttlCache) Get(key string) ([]model.PackagingType, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// removed or refreshed the entry in the meantime.
		if current, stillExists := c.items[key]; stillExists && current == entry {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or refreshes a snapshot with the configured TTL, evicting the
// least recently used entry when at capacity.
func (c *ttlCache) Set(key string, value []model.PackagingType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// cleanupLoop sweeps expired entries once a minute. The sweep only runs
// when the cache is mostly full; lightly loaded caches expire entries
// lazily on access instead.
func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			mostlyFull := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()

			if mostlyFull {
				c.sweepExpired()
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) sweepExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := time.Now()
	for _, entry := range c.items {
		if currentTime.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// unlink removes an entry from the LRU list without touching the map.
func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *ttlCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.unlink(c.tail)
}

// Invalidate removes a specific product from the cache.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}
