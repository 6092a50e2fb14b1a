package clipcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clipcache/internal/cache"
	"github.com/hupe1980/clipcache/itemstore"
	"github.com/hupe1980/clipcache/model"
)

// warmConcurrency bounds the number of in-flight Warm fetches.
const warmConcurrency = 8

// Cache is a size-bounded LRU cache for item blobs, sitting in front of a
// slower backing store. Items must be registered before their data is
// cached; fetches for unregistered items pass through to the backing
// store without caching.
//
// All methods are safe for concurrent use. Every operation, including the
// registration-state read, runs under one lock so that the entry table,
// the recency order and the byte counter can never be observed out of
// sync. A fetch that misses holds the lock across the backing-store load;
// callers needing stale-tolerant registration checks should cache the
// answer themselves.
type Cache struct {
	mu     sync.Mutex
	store  *cache.Store
	usage  *cache.Order
	closed bool

	loader  itemstore.Loader
	maxSize int64

	sink    DiagnosticSink
	logger  *Logger
	metrics MetricsCollector

	hits      atomic.Int64
	misses    atomic.Int64
	fills     atomic.Int64
	evictions atomic.Int64
}

// New creates a Cache backed by loader.
func New(loader itemstore.Loader, optFns ...Option) (*Cache, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	o := applyOptions(optFns)
	if o.maxCacheSize <= 0 {
		return nil, &ErrInvalidCapacity{Capacity: o.maxCacheSize}
	}

	return &Cache{
		store:   cache.NewStore(),
		usage:   cache.NewOrder(),
		loader:  loader,
		maxSize: o.maxCacheSize,
		sink:    o.sink,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// Fetch returns the blob for (id, tag), consulting the cache first and
// falling back to the backing store. A successful load for a registered
// item is cached, evicting least-recently-used entries until it fits.
//
// Loads for unregistered items are returned without caching, so callers
// may probe data for items they have not (or will never) register. Blobs
// larger than the cache capacity are likewise returned uncached.
//
// Returns ErrNotFound when neither the cache nor the backing store has
// data for the pair. Returned slices must be treated as read-only.
func (c *Cache) Fetch(ctx context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error) {
	start := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	if b, ok := c.store.Lookup(id, tag); ok {
		c.usage.RecordUse(id, tag)
		c.hits.Add(1)
		c.metrics.RecordFetch(true, int64(len(b)), time.Since(start), nil)
		c.logger.LogFetch(ctx, id, tag, true, len(b), nil)
		return b, nil
	}
	c.misses.Add(1)

	// The lock stays held across the load: every operation joins one
	// serialized queue of state transitions, so a register or unregister
	// cannot interleave with the fill below.
	b, err := c.loader.Load(ctx, id, tag)
	if err != nil {
		c.metrics.RecordFetch(false, 0, time.Since(start), err)
		if !errors.Is(err, ErrNotFound) {
			c.logger.LogFetch(ctx, id, tag, false, 0, err)
		}
		return nil, err
	}

	size := int64(len(b))

	if !c.store.IsRegistered(id) {
		c.metrics.RecordFetch(false, size, time.Since(start), nil)
		c.logger.LogFetch(ctx, id, tag, false, len(b), nil)
		return b, nil
	}

	if size > c.maxSize {
		// Can never fit; caching it would breach the capacity bound.
		c.metrics.RecordFetch(false, size, time.Since(start), nil)
		c.logger.LogFetch(ctx, id, tag, false, len(b), nil)
		return b, nil
	}

	if !c.makeRoom(ctx, size) {
		c.metrics.RecordFetch(false, size, time.Since(start), nil)
		c.logger.LogFetch(ctx, id, tag, false, len(b), nil)
		return b, nil
	}

	c.store.Insert(id, tag, b)
	c.usage.RecordUse(id, tag)
	c.fills.Add(1)
	c.metrics.RecordFetch(false, size, time.Since(start), nil)
	c.logger.LogFetch(ctx, id, tag, false, len(b), nil)
	return b, nil
}

// makeRoom evicts least-recently-used entries until size additional bytes
// fit. Caller holds the lock. Returns false only when the recency order
// ran dry while cached bytes remain, which means the bookkeeping has
// drifted; the blob is then served uncached.
func (c *Cache) makeRoom(ctx context.Context, size int64) bool {
	for c.store.Size()+size > c.maxSize {
		victim, ok := c.usage.EvictOldest()
		if !ok {
			c.sink.Report(ctx, fmt.Sprintf("recency order empty with %d cached bytes remaining", c.store.Size()))
			return false
		}

		evicted, ok := c.store.Remove(victim.ID, victim.Tag)
		if !ok {
			// The recency order referenced an entry the store no longer
			// holds. Report it and keep evicting; the cache self-corrects.
			c.sink.Report(ctx, fmt.Sprintf("recency order references missing entry item=%d tag=%q", victim.ID, victim.Tag))
			continue
		}

		c.evictions.Add(1)
		c.metrics.RecordEviction(int64(len(evicted)))
		c.logger.LogEvict(ctx, victim.ID, victim.Tag, int64(len(evicted)))
	}
	return true
}

// RegisterItem marks id as eligible for caching. Registering an already
// registered item is a no-op. Registration must precede caching: fetches
// for unregistered items are never cached.
func (c *Cache) RegisterItem(id model.ItemID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.store.RegisterItem(id)
	c.metrics.RecordRegister()
	c.logger.LogRegister(context.Background(), id)
}

// UnregisterItem removes id from the registration set together with every
// cached entry and recency record it owns. Unregistering an unknown item
// is a no-op.
func (c *Cache) UnregisterItem(id model.ItemID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	freed := c.store.UnregisterItem(id)
	c.usage.RemoveAll(id)
	c.metrics.RecordUnregister(freed)
	c.logger.LogUnregister(context.Background(), id, freed)
}

// IsItemRegistered reports whether id is currently registered. The check
// runs under the same lock as every mutating operation, so it never
// observes a half-applied transition.
func (c *Cache) IsItemRegistered(id model.ItemID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.IsRegistered(id)
}

// Size returns the sum of the sizes of all cached blobs in bytes. It is
// always at most the configured capacity.
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Size()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Warm fetches the given keys, filling the cache for registered items.
// Missing pairs are skipped; the first loader failure aborts the warmup.
func (c *Cache) Warm(ctx context.Context, keys []model.Key) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			_, err := c.Fetch(ctx, key.ID, key.Tag)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Fills     int64
	Evictions int64
}

// Stats returns a snapshot of the hit/miss/fill/eviction counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Fills:     c.fills.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Close marks the cache closed and drops all cached data. Subsequent
// fetches return ErrClosed; registration calls become no-ops. Close is
// idempotent.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.store = cache.NewStore()
	c.usage = cache.NewOrder()
	return nil
}
