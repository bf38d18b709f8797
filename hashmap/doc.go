// Package hashmap implements Map, an open-addressing hash table with linear
// probing and tombstone deletion.
//
// # Layout
//
// The table is a vec.Vec of slots, each empty, occupied or a tombstone. A key
// hashes to slot hash%Cap and probes forward one slot at a time, wrapping at
// the end. A lookup stops at an occupied slot holding an equal key or at the
// first empty slot. Removing a key turns its slot into a tombstone, which keeps
// later entries of the probe chain reachable; an insert reuses the first
// tombstone it passed if the key is not found further along.
//
// # Growth
//
// The load ceiling is Cap - Cap/4 (75%). Tombstones count against the ceiling
// together with live entries. When an insert would need a fresh slot beyond the
// ceiling the table is rebuilt: every live entry is reinserted into a new slot
// array and all tombstones are dropped. The new capacity is the current one
// doubled until the live entries fit, except that a table holding at least
// Cap/8 tombstones is first tried at its current capacity, so delete-heavy
// workloads compact in place instead of growing without bound.
//
// # Iteration
//
// Iteration follows slot order, which depends on the hasher and the history
// of the table. It is not insertion order. Mutating a Map while iterating over
// it is not supported.
//
// A Map is not safe for concurrent use.
package hashmap
