package hashmap

import (
	"context"
	"iter"

	"github.com/hupe1980/coll"
	"github.com/hupe1980/coll/hashing"
	"github.com/hupe1980/coll/internal/invariant"
	"github.com/hupe1980/coll/vec"
)

type state uint8

const (
	empty state = iota
	occupied
	tombstone
)

type slot[K comparable, V any] struct {
	key   K
	value V
	state state
}

// Map is a hash map from K to V.
type Map[K comparable, V any] struct {
	slots      *vec.Vec[slot[K, V]]
	live       int
	tombstones int
	hasher     hashing.Hasher[K]
	logger     *coll.Logger
	metrics    coll.MetricsCollector
}

// New creates an empty map that hashes keys with hashing.Comparable.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](hashing.Comparable[K](), opts...)
}

// NewWithHasher creates an empty map that hashes keys with h.
func NewWithHasher[K comparable, V any](h hashing.Hasher[K], opts ...Option) *Map[K, V] {
	o := applyOptions(opts)
	invariant.NonNegative(o.capacity, "capacity")

	return &Map[K, V]{
		slots:   newSlots[K, V](max(1, o.capacity)),
		hasher:  h,
		logger:  o.logger.WithComponent("hashmap"),
		metrics: o.metrics,
	}
}

// newSlots allocates n empty slots.
func newSlots[K comparable, V any](n int) *vec.Vec[slot[K, V]] {
	s := vec.WithCapacity[slot[K, V]](n)
	for range n {
		s.Push(slot[K, V]{})
	}
	return s
}

// ceiling is the most slots that may be in use (live or tombstone) at capacity n.
func ceiling(n int) int {
	return n - n/4
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.live }

// Cap returns the number of slots.
func (m *Map[K, V]) Cap() int { return m.slots.Cap() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.live == 0 }

// Hasher returns the hasher the map was created with.
func (m *Map[K, V]) Hasher() hashing.Hasher[K] { return m.hasher }

// Tombstones returns the number of slots holding deleted entries that have not
// yet been reclaimed by a rehash.
func (m *Map[K, V]) Tombstones() int { return m.tombstones }

// probe walks the probe chain of key. It returns the index of the occupied slot
// holding key and true, or, if key is absent, the slot an insert should use and
// false: the first tombstone passed, else the empty slot that ended the chain.
// The index is -1 only when every slot is occupied by other keys.
func (m *Map[K, V]) probe(key K) (int, bool) {
	slots := m.slots.Slice()
	n := len(slots)
	i := int(m.hasher.Hash(key) % uint64(n))
	reuse := -1

	for range n {
		s := &slots[i]
		switch s.state {
		case empty:
			if reuse >= 0 {
				return reuse, false
			}
			return i, false
		case tombstone:
			if reuse < 0 {
				reuse = i
			}
		case occupied:
			if s.key == key {
				return i, true
			}
		}
		if i++; i == n {
			i = 0
		}
	}
	return reuse, false
}

// Insert associates value with key. If key was already present its value is
// replaced and the previous value is returned with replaced set to true.
func (m *Map[K, V]) Insert(key K, value V) (old V, replaced bool) {
	i, found := m.probe(key)
	if found {
		s := m.slots.At(i)
		old, s.value = s.value, value
		return old, true
	}

	if i < 0 || m.slots.Get(i).state == empty {
		if m.live+m.tombstones+1 > ceiling(m.Cap()) {
			m.reserve(1)
			i, _ = m.probe(key)
		}
	}

	s := m.slots.At(i)
	if s.state == tombstone {
		m.tombstones--
	}
	*s = slot[K, V]{key: key, value: value, state: occupied}
	m.live++
	return old, false
}

// Extend inserts every pair of seq, replacing existing values.
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.probe(key); ok {
		return m.slots.Get(i).value, true
	}
	var zero V
	return zero, false
}

// GetPtr returns a pointer to the value stored for key, or nil if key is absent.
// The pointer is invalidated by the next insert, remove or rehash.
func (m *Map[K, V]) GetPtr(key K) *V {
	if i, ok := m.probe(key); ok {
		return &m.slots.At(i).value
	}
	return nil
}

// GetKeyValue returns the stored key equal to key together with its value.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.probe(key); ok {
		s := m.slots.Get(i)
		return s.key, s.value, true
	}
	var (
		zk K
		zv V
	)
	return zk, zv, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.probe(key)
	return ok
}

// Remove deletes key and returns its value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	_, v, ok := m.RemoveEntry(key)
	return v, ok
}

// RemoveEntry deletes key and returns the stored key and value.
// The slot becomes a tombstone until the next rehash.
func (m *Map[K, V]) RemoveEntry(key K) (K, V, bool) {
	i, ok := m.probe(key)
	if !ok {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	s := m.slots.At(i)
	k, v := s.key, s.value
	*s = slot[K, V]{state: tombstone}
	m.live--
	m.tombstones++
	return k, v, true
}

// Retain removes every entry for which keep returns false.
func (m *Map[K, V]) Retain(keep func(K, V) bool) {
	slots := m.slots.Slice()
	for i := range slots {
		s := &slots[i]
		if s.state == occupied && !keep(s.key, s.value) {
			*s = slot[K, V]{state: tombstone}
			m.live--
			m.tombstones++
		}
	}
}

// Clear removes every entry and tombstone, keeping the capacity.
func (m *Map[K, V]) Clear() {
	clear(m.slots.Slice())
	m.live = 0
	m.tombstones = 0
}

// Drain moves every entry out of the map and returns them as an iterator.
// The map is left empty with its capacity unchanged. Entries the iterator
// does not reach are released with the detached slots.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	detached := m.slots.Take()
	for range detached.Len() {
		m.slots.Push(slot[K, V]{})
	}
	m.live = 0
	m.tombstones = 0

	return func(yield func(K, V) bool) {
		defer detached.Free()
		for s := range detached.Values() {
			if s.state == occupied && !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Reserve makes room for at least additional more entries without a rehash.
func (m *Map[K, V]) Reserve(additional int) {
	invariant.NonNegative(additional, "additional")
	m.reserve(additional)
}

func (m *Map[K, V]) reserve(additional int) {
	n := m.Cap()
	if invariant.Sum(m.live+m.tombstones, additional) <= ceiling(n) {
		return
	}
	c := n
	if m.tombstones < n/8 {
		// Too few tombstones for an in-place rebuild to pay off.
		c = invariant.Double(c)
	}
	for m.live+additional > ceiling(c) {
		c = invariant.Double(c)
	}
	m.rehash(c)
}

// ShrinkTo rebuilds the table with the smallest capacity, found by doubling
// from minCap, whose ceiling still holds every entry. Nothing happens unless
// that capacity is smaller than the current one.
func (m *Map[K, V]) ShrinkTo(minCap int) {
	c := max(1, minCap)
	for m.live > ceiling(c) {
		c *= 2
	}
	if c < m.Cap() {
		m.rehash(c)
	}
}

// ShrinkToFit shrinks the table as far as its entries allow.
func (m *Map[K, V]) ShrinkToFit() {
	m.ShrinkTo(1)
}

// rehash moves every live entry into a fresh table of n slots, dropping all
// tombstones. The entry count is rebuilt from zero during reinsertion.
func (m *Map[K, V]) rehash(n int) {
	old := m.slots
	oldCap, dropped := old.Cap(), m.tombstones

	m.slots = newSlots[K, V](n)
	m.live = 0
	m.tombstones = 0

	slots := m.slots.Slice()
	for s := range old.Values() {
		if s.state != occupied {
			continue
		}
		// Keys are unique, so the first empty slot of the chain is the target.
		i := int(m.hasher.Hash(s.key) % uint64(n))
		for slots[i].state != empty {
			if i++; i == n {
				i = 0
			}
		}
		slots[i] = s
		m.live++
	}
	old.Free()

	if n > oldCap {
		m.metrics.RecordGrow(oldCap, n)
	}
	m.metrics.RecordRehash(oldCap, n, m.live, dropped)
	m.logger.LogRehash(context.Background(), oldCap, n, m.live, dropped)
}

// All returns an iterator over the entries in slot order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for s := range m.slots.Values() {
			if s.state == occupied && !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in slot order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in slot order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
