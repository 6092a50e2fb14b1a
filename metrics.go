package clipcache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFetch is called after each fetch operation. hit reports
	// whether the cache answered without the backing store, bytes is the
	// size of the returned blob (0 on miss), duration is the total time
	// taken, err is nil if successful.
	RecordFetch(hit bool, bytes int64, duration time.Duration, err error)

	// RecordEviction is called for each evicted entry with its size.
	RecordEviction(bytes int64)

	// RecordRegister is called after each item registration.
	RecordRegister()

	// RecordUnregister is called after each item unregistration with the
	// number of cached bytes freed.
	RecordUnregister(freed int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFetch(bool, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordEviction(int64)                          {}
func (NoopMetricsCollector) RecordRegister()                               {}
func (NoopMetricsCollector) RecordUnregister(int64)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FetchCount      atomic.Int64
	FetchHits       atomic.Int64
	FetchErrors     atomic.Int64
	FetchTotalNanos atomic.Int64
	EvictionCount   atomic.Int64
	EvictionBytes   atomic.Int64
	RegisterCount   atomic.Int64
	UnregisterCount atomic.Int64
	UnregisterFreed atomic.Int64
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(hit bool, bytes int64, duration time.Duration, err error) {
	b.FetchCount.Add(1)
	b.FetchTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.FetchHits.Add(1)
	}
	if err != nil {
		b.FetchErrors.Add(1)
	}
}

// RecordEviction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEviction(bytes int64) {
	b.EvictionCount.Add(1)
	b.EvictionBytes.Add(bytes)
}

// RecordRegister implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRegister() {
	b.RegisterCount.Add(1)
}

// RecordUnregister implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnregister(freed int64) {
	b.UnregisterCount.Add(1)
	b.UnregisterFreed.Add(freed)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FetchCount:      b.FetchCount.Load(),
		FetchHits:       b.FetchHits.Load(),
		FetchErrors:     b.FetchErrors.Load(),
		FetchAvgNanos:   b.getAvgFetchNanos(),
		EvictionCount:   b.EvictionCount.Load(),
		EvictionBytes:   b.EvictionBytes.Load(),
		RegisterCount:   b.RegisterCount.Load(),
		UnregisterCount: b.UnregisterCount.Load(),
		UnregisterFreed: b.UnregisterFreed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFetchNanos() int64 {
	count := b.FetchCount.Load()
	if count == 0 {
		return 0
	}
	return b.FetchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FetchCount      int64
	FetchHits       int64
	FetchErrors     int64
	FetchAvgNanos   int64
	EvictionCount   int64
	EvictionBytes   int64
	RegisterCount   int64
	UnregisterCount int64
	UnregisterFreed int64
}
