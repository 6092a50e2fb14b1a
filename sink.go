package clipcache

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// DiagnosticSink receives reports of internal bookkeeping inconsistencies,
// such as a recency record pointing at an entry the cache no longer holds.
// Reports are fire-and-forget and must never fail the caller.
type DiagnosticSink interface {
	Report(ctx context.Context, msg string)
}

// LoggerSink writes diagnostic reports to a Logger at error level.
type LoggerSink struct {
	logger *Logger
}

// NewLoggerSink creates a sink that logs reports via logger.
// If logger is nil, NoopLogger is used.
func NewLoggerSink(logger *Logger) *LoggerSink {
	if logger == nil {
		logger = NoopLogger()
	}
	return &LoggerSink{logger: logger}
}

// Report implements DiagnosticSink.
func (s *LoggerSink) Report(ctx context.Context, msg string) {
	s.logger.ErrorContext(ctx, "cache inconsistency", "detail", msg)
}

// RateLimitedSink wraps another sink and drops reports beyond a rate
// limit. A desynchronized cache can emit one report per eviction, so an
// unthrottled sink may flood its destination.
type RateLimitedSink struct {
	inner   DiagnosticSink
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewRateLimitedSink creates a sink allowing perSec reports per second
// with the given burst.
func NewRateLimitedSink(inner DiagnosticSink, perSec float64, burst int) *RateLimitedSink {
	return &RateLimitedSink{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSec), burst),
	}
}

// Report implements DiagnosticSink.
func (s *RateLimitedSink) Report(ctx context.Context, msg string) {
	if !s.limiter.Allow() {
		s.dropped.Add(1)
		return
	}
	s.inner.Report(ctx, msg)
}

// Dropped returns the number of reports suppressed by the rate limit.
func (s *RateLimitedSink) Dropped() int64 {
	return s.dropped.Load()
}
