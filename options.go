package clipcache

import (
	"log/slog"
)

// DefaultMaxCacheSize is the byte capacity used when WithMaxCacheSize is
// not given.
const DefaultMaxCacheSize = 100_000_000

type options struct {
	maxCacheSize     int64
	logger           *Logger
	metricsCollector MetricsCollector
	sink             DiagnosticSink
}

// Option configures Cache construction behavior.
type Option func(*options)

// WithMaxCacheSize sets the byte capacity of the cache. The capacity must
// be positive; New rejects anything else.
func WithMaxCacheSize(n int64) Option {
	return func(o *options) {
		o.maxCacheSize = n
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithDiagnosticSink configures the destination for internal-inconsistency
// reports. By default reports go to the configured logger at error level.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxCacheSize:     DefaultMaxCacheSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.sink == nil {
		o.sink = NewLoggerSink(o.logger)
	}
	return o
}
