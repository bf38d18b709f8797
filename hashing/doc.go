// Package hashing provides hash strategies for the hashmap and hashset packages.
//
// A Hasher maps a key to a 64-bit hash. Equal keys must hash equally for the
// lifetime of a table; nothing else is required, so a constant hasher is a
// valid (if slow) strategy and is handy for exercising collision handling.
//
//	hashing.Comparable[K]()  // any comparable key, hash/maphash with a random seed
//	hashing.String[K]()      // string keys, xxHash64
//	hashing.Int[K]()         // integer keys, xxHash64 of the little-endian encoding
//
// The xxHash strategies are unseeded and therefore deterministic across runs,
// which makes slot order reproducible in tests.
package hashing
