package btreeset

import (
	"cmp"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/coll/btree"
	"github.com/hupe1980/coll/hashing"
	"github.com/hupe1980/coll/internal/bitmap"
)

// Set is an ordered set of K.
type Set[K any] struct {
	m       *btree.Map[K, struct{}]
	compare func(a, b K) int
	opts    []btree.Option
}

// New creates an empty set ordered by cmp.Compare. The options configure the
// underlying tree.
func New[K cmp.Ordered](opts ...btree.Option) *Set[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc creates an empty set ordered by compare.
func NewFunc[K any](compare func(a, b K) int, opts ...btree.Option) *Set[K] {
	return &Set[K]{
		m:       btree.NewFunc[K, struct{}](compare, opts...),
		compare: compare,
		opts:    opts,
	}
}

// Of creates a set holding keys.
func Of[K cmp.Ordered](keys ...K) *Set[K] {
	s := New[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func (s *Set[K]) Len() int      { return s.m.Len() }
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Order returns the order of the underlying tree.
func (s *Set[K]) Order() int { return s.m.Order() }

// newMap returns an empty tree configured like s.m.
func (s *Set[K]) newMap() *btree.Map[K, struct{}] {
	return btree.NewFunc[K, struct{}](s.compare, s.opts...)
}

// rebuild replaces the tree with one holding only the keys keep accepts.
func (s *Set[K]) rebuild(keep func(K) bool) {
	next := s.newMap()
	for k := range s.m.Keys() {
		if keep(k) {
			next.Insert(k, struct{}{})
		}
	}
	s.m.Clear()
	s.m = next
}

// Insert adds key and reports whether it was not already present.
func (s *Set[K]) Insert(key K) bool {
	_, replaced := s.m.Insert(key, struct{}{})
	return !replaced
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
	_, ok := s.Take(key)
	return ok
}

// Take deletes key and returns the stored key.
func (s *Set[K]) Take(key K) (K, bool) {
	stored, ok := s.Get(key)
	if !ok {
		return stored, false
	}
	s.rebuild(func(k K) bool { return s.compare(k, key) != 0 })
	return stored, true
}

// Replace adds key, returning the equal key it displaced, if any.
func (s *Set[K]) Replace(key K) (K, bool) {
	old, ok := s.Take(key)
	s.Insert(key)
	return old, ok
}

// First returns the smallest key.
func (s *Set[K]) First() (K, bool) {
	k, _, ok := s.m.Min()
	return k, ok
}

// Last returns the largest key.
func (s *Set[K]) Last() (K, bool) {
	k, _, ok := s.m.Max()
	return k, ok
}

// PopFirst removes and returns the smallest key.
func (s *Set[K]) PopFirst() (K, bool) {
	k, ok := s.First()
	if !ok {
		return k, false
	}
	return s.Take(k)
}

// PopLast removes and returns the largest key.
func (s *Set[K]) PopLast() (K, bool) {
	k, ok := s.Last()
	if !ok {
		return k, false
	}
	return s.Take(k)
}

// Clear removes every key.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// All returns an iterator over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Backward returns an iterator over the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range returns an iterator over the keys k with lo <= k < hi in ascending
// order.
func (s *Set[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Ascend(lo) {
			if s.compare(k, hi) >= 0 || !yield(k) {
				return
			}
		}
	}
}

// Retain removes every key for which keep returns false.
func (s *Set[K]) Retain(keep func(K) bool) {
	s.rebuild(keep)
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
	s.Extend(other.All())
	other.Clear()
}

// SplitOff moves the keys not less than key into a new set, which is
// returned. s keeps the keys less than key.
func (s *Set[K]) SplitOff(key K) *Set[K] {
	right := &Set[K]{m: s.newMap(), compare: s.compare, opts: s.opts}
	for k := range s.m.Ascend(key) {
		right.m.Insert(k, struct{}{})
	}
	s.rebuild(func(k K) bool { return s.compare(k, key) < 0 })
	return right
}

// merge walks s and other together in ascending order. Each distinct key is
// passed to yield once, along with the operands that hold it.
func (s *Set[K]) merge(other *Set[K], yield func(k K, inS, inOther bool) bool) {
	next, stop := iter.Pull(other.All())
	defer stop()

	o, ok := next()
	for k := range s.All() {
		for ok && s.compare(o, k) < 0 {
			if !yield(o, false, true) {
				return
			}
			o, ok = next()
		}
		if ok && s.compare(o, k) == 0 {
			if !yield(k, true, true) {
				return
			}
			o, ok = next()
			continue
		}
		if !yield(k, true, false) {
			return
		}
	}
	for ; ok; o, ok = next() {
		if !yield(o, false, true) {
			return
		}
	}
}

// filter returns the merged keys accepted by keep.
func (s *Set[K]) filter(other *Set[K], keep func(inS, inOther bool) bool) iter.Seq[K] {
	return func(yield func(K) bool) {
		s.merge(other, func(k K, inS, inOther bool) bool {
			return !keep(inS, inOther) || yield(k)
		})
	}
}

// Union returns an iterator over the keys in s or other, ascending.
func (s *Set[K]) Union(other *Set[K]) iter.Seq[K] {
	return s.filter(other, func(_, _ bool) bool { return true })
}

// Intersection returns an iterator over the keys in both s and other,
// ascending.
func (s *Set[K]) Intersection(other *Set[K]) iter.Seq[K] {
	return s.filter(other, func(inS, inOther bool) bool { return inS && inOther })
}

// Difference returns an iterator over the keys in s but not in other,
// ascending.
func (s *Set[K]) Difference(other *Set[K]) iter.Seq[K] {
	return s.filter(other, func(inS, inOther bool) bool { return inS && !inOther })
}

// SymmetricDifference returns an iterator over the keys in exactly one of s
// and other, ascending.
func (s *Set[K]) SymmetricDifference(other *Set[K]) iter.Seq[K] {
	return s.filter(other, func(inS, inOther bool) bool { return inS != inOther })
}

// IsSubset reports whether every key of s is in other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for range s.Difference(other) {
		return false
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
func FromBitmap[K hashing.Integer](rb *roaring.Bitmap, opts ...btree.Option) (*Set[K], error) {
	s := New[K](opts...)
	if err := bitmap.Decode(rb, func(k K) { s.Insert(k) }); err != nil {
		return nil, err
	}
	return s, nil
}
