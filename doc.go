// Package clipcache provides a size-bounded, least-recently-used cache
// for binary item data, designed to sit in front of a slower persistent
// store such as a clipboard history on disk.
//
// Blobs are keyed by (item id, type tag), where a tag discriminates one
// representation of the item's data (for example "text/plain" and
// "image/png" versions of the same clipboard record). Items opt in to
// caching through a two-phase lifecycle: an item must be registered
// before its data is cached, and unregistering it atomically drops every
// cached representation.
//
// # Quick Start
//
//	store := itemstore.NewLocalStore("./clipboard", nil)
//	c, err := clipcache.New(store,
//	    clipcache.WithMaxCacheSize(64<<20),
//	    clipcache.WithLogLevel(slog.LevelInfo),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.RegisterItem(42)
//	data, err := c.Fetch(ctx, 42, "text/plain")
//
// # Semantics
//
//   - A fetch hit refreshes the entry's recency and returns the cached
//     bytes without touching the backing store.
//   - A fetch miss loads from the backing store; the result is cached
//     only if the item is registered and the blob fits the capacity.
//     Least-recently-used entries are evicted until it fits.
//   - Fetches for unregistered items pass through uncached, so callers
//     can probe data for items they never registered.
//   - ErrNotFound reports that neither the cache nor the backing store
//     has the requested pair; it is an expected outcome, not a failure.
//
// The cache owns no disk format and performs no I/O beyond calling the
// configured itemstore.Loader. Cached data is not persisted: everything
// is re-fetched from the backing store after a restart.
//
// # Backing Stores
//
// The itemstore package ships filesystem and in-memory stores plus
// optional zstd/LZ4 compression codecs; the itemstore/minio, itemstore/s3
// and itemstore/dynamo subpackages cover object and table storage.
package clipcache
