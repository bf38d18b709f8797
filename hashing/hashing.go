package hashing

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes the hash of a key.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts an ordinary function to a Hasher.
type HasherFunc[K any] func(key K) uint64

// Hash implements Hasher.
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// Integer is the set of integer key types accepted by Int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Comparable returns a hasher for any comparable key type, backed by
// hash/maphash with a fresh random seed.
func Comparable[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return HasherFunc[K](func(key K) uint64 {
		return maphash.Comparable(seed, key)
	})
}

// String returns an xxHash64 hasher for string keys.
func String[K ~string]() Hasher[K] {
	return HasherFunc[K](func(key K) uint64 {
		return xxhash.Sum64String(string(key))
	})
}

// Int returns an xxHash64 hasher for integer keys.
func Int[K Integer]() Hasher[K] {
	return HasherFunc[K](func(key K) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(key))
		return xxhash.Sum64(buf[:])
	})
}

// Constant returns a hasher that maps every key to h.
// Every key collides, so lookups degrade to a linear scan of the probe chain.
func Constant[K any](h uint64) Hasher[K] {
	return HasherFunc[K](func(K) uint64 { return h })
}
