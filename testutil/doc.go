// Package testutil provides testing utilities for the coll containers.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source and generators for
// key workloads.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Perm(1000)          // distinct ints in random order
//	words := rng.Strings(100, 8)    // random lowercase strings
//
// # Skewed Workloads
//
//	hot := rng.Zipf(1000, 1.2)      // most draws hit a few small keys
package testutil
