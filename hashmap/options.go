package hashmap

import "github.com/hupe1980/coll"

// DefaultCapacity is the slot count of a table created without WithCapacity.
const DefaultCapacity = 16

type options struct {
	capacity int
	logger   *coll.Logger
	metrics  coll.MetricsCollector
}

// Option configures a Map.
type Option func(*options)

// WithCapacity sets the initial number of slots. A capacity of 0 is treated
// as 1; negative values panic.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger that receives rehash events at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *coll.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the collector that receives grow and rehash events.
//
// If nil is passed, coll.NoopMetricsCollector is used.
func WithMetrics(m coll.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = coll.NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = coll.NoopMetricsCollector{}
	}
	return o
}
