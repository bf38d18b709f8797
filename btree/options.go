package btree

import "github.com/hupe1980/coll"

const (
	// DefaultOrder is the order of a tree created without WithOrder.
	DefaultOrder = 6
	// MinOrder is the smallest order a tree accepts.
	MinOrder = 3
)

type options struct {
	order   int
	logger  *coll.Logger
	metrics coll.MetricsCollector
}

// Option configures a Map.
type Option func(*options)

// WithOrder sets the maximum number of children per node.
// Orders below MinOrder panic when the tree is created.
func WithOrder(order int) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithLogger sets the logger that receives root splits at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *coll.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the collector that receives split events.
//
// If nil is passed, coll.NoopMetricsCollector is used.
func WithMetrics(m coll.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{order: DefaultOrder}
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
