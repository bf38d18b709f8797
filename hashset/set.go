package hashset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/coll/hashing"
	"github.com/hupe1980/coll/hashmap"
	"github.com/hupe1980/coll/internal/bitmap"
)

// Set is an unordered set of K.
type Set[K comparable] struct {
	m *hashmap.Map[K, struct{}]
}

// New creates an empty set. The options configure the underlying map.
func New[K comparable](opts ...hashmap.Option) *Set[K] {
	return &Set[K]{m: hashmap.New[K, struct{}](opts...)}
}

// NewWithHasher creates an empty set that hashes keys with h.
func NewWithHasher[K comparable](h hashing.Hasher[K], opts ...hashmap.Option) *Set[K] {
	return &Set[K]{m: hashmap.NewWithHasher[K, struct{}](h, opts...)}
}

// Of creates a set holding keys.
func Of[K comparable](keys ...K) *Set[K] {
	s := New[K](hashmap.WithCapacity(len(keys)))
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Hasher returns the hasher of the underlying map.
func (s *Set[K]) Hasher() hashing.Hasher[K] { return s.m.Hasher() }

func (s *Set[K]) Len() int      { return s.m.Len() }
func (s *Set[K]) Cap() int      { return s.m.Cap() }
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Insert adds key and reports whether it was not already present.
func (s *Set[K]) Insert(key K) bool {
	_, replaced := s.m.Insert(key, struct{}{})
	return !replaced
}

// Replace adds key, returning the equal key it displaced, if any.
func (s *Set[K]) Replace(key K) (K, bool) {
	old, _, ok := s.m.RemoveEntry(key)
	s.m.Insert(key, struct{}{})
	return old, ok
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Get returns the stored key equal to key.
func (s *Set[K]) Get(key K) (K, bool) {
	k, _, ok := s.m.GetKeyValue(key)
	return k, ok
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// Take deletes key and returns the stored key.
func (s *Set[K]) Take(key K) (K, bool) {
	k, _, ok := s.m.RemoveEntry(key)
	return k, ok
}

// Clear removes every key, keeping the capacity.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Reserve makes room for at least additional more keys.
func (s *Set[K]) Reserve(additional int) {
	s.m.Reserve(additional)
}

// ShrinkTo lowers the capacity as far as the current keys and minCap allow.
func (s *Set[K]) ShrinkTo(minCap int) {
	s.m.ShrinkTo(minCap)
}

// ShrinkToFit lowers the capacity as far as the current keys allow.
func (s *Set[K]) ShrinkToFit() {
	s.m.ShrinkToFit()
}

// Retain removes every key for which keep returns false.
func (s *Set[K]) Retain(keep func(K) bool) {
	s.m.Retain(func(k K, _ struct{}) bool { return keep(k) })
}

// Extend inserts every key of seq.
func (s *Set[K]) Extend(seq iter.Seq[K]) {
	for k := range seq {
		s.Insert(k)
	}
}

// Append moves every key of other into s, leaving other empty.
func (s *Set[K]) Append(other *Set[K]) {
	if s == other {
		return
	}
	for k := range other.m.Drain() {
		s.Insert(k)
	}
}

// All returns an iterator over the keys in unspecified order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Drain removes every key and returns them as an iterator.
func (s *Set[K]) Drain() iter.Seq[K] {
	drained := s.m.Drain()
	return func(yield func(K) bool) {
		for k := range drained {
			if !yield(k) {
				return
			}
		}
	}
}

// Union returns an iterator over the keys in s or other.
func (s *Set[K]) Union(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.All() {
			if !yield(k) {
				return
			}
		}
		for k := range other.All() {
			if !s.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// Intersection returns an iterator over the keys in both s and other.
func (s *Set[K]) Intersection(other *Set[K]) iter.Seq[K] {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	return func(yield func(K) bool) {
		for k := range small.All() {
			if large.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// Difference returns an iterator over the keys in s but not in other.
func (s *Set[K]) Difference(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.All() {
			if !other.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// SymmetricDifference returns an iterator over the keys in exactly one of s
// and other.
func (s *Set[K]) SymmetricDifference(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.Difference(other) {
			if !yield(k) {
				return
			}
		}
		for k := range other.Difference(s) {
			if !yield(k) {
				return
			}
		}
	}
}

// IsSubset reports whether every key of s is in other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for k := range s.All() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every key of other is in s.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no key.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	for range s.Intersection(other) {
		return false
	}
	return true
}

// ToBitmap returns a roaring bitmap holding the keys of s. It fails with an
// error marked coll.ErrOverflow if a key is negative or exceeds math.MaxUint32.
func ToBitmap[K hashing.Integer](s *Set[K]) (*roaring.Bitmap, error) {
	return bitmap.Encode(s.All())
}

// FromBitmap creates a set holding the elements of rb. It fails with an error
// marked coll.ErrOverflow if an element does not fit in K.
func FromBitmap[K hashing.Integer](rb *roaring.Bitmap, opts ...hashmap.Option) (*Set[K], error) {
	s := NewWithHasher[K](hashing.Int[K](), opts...)
	s.Reserve(int(min(rb.GetCardinality(), 1<<30)))
	if err := bitmap.Decode(rb, func(k K) { s.Insert(k) }); err != nil {
		return nil, err
	}
	return s, nil
}
