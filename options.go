package bsa

import (
	"log/slog"

	"github.com/hupe1980/bsa/resource"
)

type options struct {
	logger             *Logger
	metricsCollector   MetricsCollector
	resourceController *resource.Controller
	memoryLimit        int64
}

// Option configures New.
type Option func(*options)

// WithLogger configures structured logging for row lifecycle events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bsa.NewJSONLogger(slog.LevelDebug)
//	arr, _ := bsa.New(bsa.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
//	metrics := &bsa.BasicMetricsCollector{}
//	arr, _ := bsa.New(bsa.WithMetricsCollector(metrics))
//	// ... use arr ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithResourceController accounts the array's memory against rc.
// A controller may be shared between arrays; it takes precedence over
// WithMemoryLimit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resourceController = rc
	}
}

// WithMemoryLimit bounds the bytes the array may hold (bitmap plus rows).
// Set and New fail with ErrResourceExhausted instead of exceeding it.
// A limit of 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}
