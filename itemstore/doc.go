// Package itemstore provides backing stores that supply raw item data to
// the cache on a miss.
//
// Implementations included here:
//
//   - MemoryStore: in-memory store, mainly for tests
//   - LocalStore: one file per (item, tag) under a root directory
//
// Cloud-backed stores live in subpackages (minio, s3, dynamo).
//
// Stores may transparently compress data at rest via a Codec
// (Zstd or LZ4); the cache always sees decoded bytes.
package itemstore
