// Package coll is the root of a library of generic containers built on one
// growable array engine.
//
// The containers live in subpackages:
//
//	vec       growable array with explicit capacity control and a stable merge sort
//	hashmap   open-addressing hash map with tombstone deletion
//	btree     ordered map stored in a B-tree with preemptive splitting
//	deque     double-ended queue over vec
//	list      doubly linked list with an index arena
//	hashset   unordered set over hashmap
//	btreeset  ordered set over btree
//	hashing   key hashers for hashmap and hashset
//
// This package holds what the containers share: the sentinel errors carried by
// precondition panics, a structured Logger and the MetricsCollector interface.
//
// # Quick Start
//
//	m := hashmap.New[string, int]()
//	m.Insert("apples", 3)
//	v, ok := m.Get("apples")
//
//	t := btree.New[int, string](btree.WithOrder(4))
//	t.Insert(30, "thirty")
//	for k, v := range t.All() {
//	    fmt.Println(k, v)
//	}
//
// # Observability
//
// Maps accept a logger and a metrics collector through their options. Both
// default to no-ops.
//
//	metrics := &coll.BasicMetricsCollector{}
//	m := hashmap.New[int, int](
//	    hashmap.WithLogger(coll.NewJSONLogger(slog.LevelDebug)),
//	    hashmap.WithMetrics(metrics),
//	)
//	...
//	fmt.Println(metrics.GetStats().RehashCount)
//
// Hash map rehashes and B-tree root splits are logged at debug level.
//
// # Concurrency
//
// No container is safe for concurrent use. Distinct instances share no state
// and may be used from different goroutines.
package coll
