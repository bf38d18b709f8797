package coll

import "sync/atomic"

// MetricsCollector receives structural events from the containers.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rehashCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordRehash(oldCap, newCap, live, tombstones int) {
//	    p.rehashCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordGrow is called when a hash table rehash grows the slot array.
	RecordGrow(oldCap, newCap int)

	// RecordRehash is called after a hash table has been rebuilt.
	// tombstones is the number of tombstones discarded by the rebuild.
	RecordRehash(oldCap, newCap, live, tombstones int)

	// RecordSplit is called after a B-tree node split.
	// root is true when the split created a new root.
	RecordSplit(root bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)             {}
func (NoopMetricsCollector) RecordRehash(int, int, int, int) {}
func (NoopMetricsCollector) RecordSplit(bool)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	RehashCount       atomic.Int64
	TombstonesDropped atomic.Int64
	SplitCount        atomic.Int64
	RootSplitCount    atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int) {
	b.GrowCount.Add(1)
}

// RecordRehash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRehash(oldCap, newCap, live, tombstones int) {
	b.RehashCount.Add(1)
	b.TombstonesDropped.Add(int64(tombstones))
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(root bool) {
	b.SplitCount.Add(1)
	if root {
		b.RootSplitCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:         b.GrowCount.Load(),
		RehashCount:       b.RehashCount.Load(),
		TombstonesDropped: b.TombstonesDropped.Load(),
		SplitCount:        b.SplitCount.Load(),
		RootSplitCount:    b.RootSplitCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount         int64
	RehashCount       int64
	TombstonesDropped int64
	SplitCount        int64
	RootSplitCount    int64
}
