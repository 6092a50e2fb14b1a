// Package cache holds the bookkeeping state of the clipboard blob cache:
// the entry table, the registration set and the recency order.
//
// Nothing in this package is safe for concurrent use. Store and Order are
// two views over one logical state and must be guarded together by a
// single lock, which the clipcache facade provides. Guarding them
// separately would allow interleavings that break the one-to-one mapping
// between cached entries and recency records.
package cache
