package btree

import (
	"cmp"
	"context"
	"iter"

	"github.com/hupe1980/coll"
	"github.com/hupe1980/coll/internal/invariant"
)

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	root    *node[K, V]
	order   int
	length  int
	cmp     func(a, b K) int
	logger  *coll.Logger
	metrics coll.MetricsCollector
}

// New creates an empty map ordered by cmp.Compare.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty map ordered by compare, which must define a total
// order and return a negative number when a < b, zero when a == b and a
// positive number when a > b.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Map[K, V] {
	o := applyOptions(opts)
	invariant.Order(o.order, MinOrder)

	return &Map[K, V]{
		order:   o.order,
		cmp:     compare,
		logger:  o.logger.WithComponent("btree"),
		metrics: o.metrics,
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.length }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.length == 0 }

// Order returns the maximum number of children per node.
func (m *Map[K, V]) Order() int { return m.order }

// Height returns the number of levels in the tree, 0 for an empty map.
func (m *Map[K, V]) Height() int {
	h := 0
	for n := m.root; n != nil; h++ {
		if n.leaf {
			return h + 1
		}
		n = n.children.Get(0)
	}
	return h
}

// Insert stores value under key. If the key was present, the previous value is
// returned with replaced set to true and the length is unchanged.
func (m *Map[K, V]) Insert(key K, value V) (old V, replaced bool) {
	if m.root == nil {
		m.root = newNode[K, V](true, m.order)
	}

	if m.root.full(m.order) {
		root := newNode[K, V](false, m.order)
		root.children.Push(m.root)
		m.root = root
		m.splitChild(root, 0)
		m.metrics.RecordSplit(true)
		m.logger.LogSplit(context.Background(), m.Height(), m.length)
	}

	old, replaced = m.insertNonFull(m.root, key, value)
	if !replaced {
		m.length++
	}
	return old, replaced
}

// insertNonFull descends from n, which must not be full, splitting every full
// child before entering it.
func (m *Map[K, V]) insertNonFull(n *node[K, V], key K, value V) (V, bool) {
	for {
		i, found := m.search(n, key)
		if found {
			return n.values.Set(i, value), true
		}

		if n.leaf {
			n.keys.Insert(i, key)
			n.values.Insert(i, value)
			var zero V
			return zero, false
		}

		if n.children.Get(i).full(m.order) {
			m.splitChild(n, i)
			m.metrics.RecordSplit(false)

			// The promoted median now sits at i.
			c := m.cmp(key, n.keys.Get(i))
			if c == 0 {
				return n.values.Set(i, value), true
			}
			if c > 0 {
				i++
			}
		}
		n = n.children.Get(i)
	}
}

// splitChild splits the full child at index i of parent. The keys after the
// median move to a new sibling inserted at i+1 and the median is promoted into
// parent at i.
func (m *Map[K, V]) splitChild(parent *node[K, V], i int) {
	child := parent.children.Get(i)
	mid := (m.order - 1) / 2

	sibling := newNode[K, V](child.leaf, m.order)
	sibling.keys.Extend(child.keys.Slice()[mid+1:]...)
	sibling.values.Extend(child.values.Slice()[mid+1:]...)
	if !child.leaf {
		sibling.children.Extend(child.children.Slice()[mid+1:]...)
		child.children.Truncate(mid + 1)
	}

	key, value := child.keys.Get(mid), child.values.Get(mid)
	child.keys.Truncate(mid)
	child.values.Truncate(mid)

	parent.keys.Insert(i, key)
	parent.values.Insert(i, value)
	parent.children.Insert(i+1, sibling)
}

// search returns the index of the first key in n not less than key and
// whether that key equals key.
func (m *Map[K, V]) search(n *node[K, V], key K) (int, bool) {
	keys := n.keys.Slice()
	for i, k := range keys {
		if c := m.cmp(key, k); c <= 0 {
			return i, c == 0
		}
	}
	return len(keys), false
}

// find returns the node holding key and its index, or nil.
func (m *Map[K, V]) find(key K) (*node[K, V], int) {
	n := m.root
	for n != nil {
		i, found := m.search(n, key)
		if found {
			return n, i
		}
		if n.leaf {
			return nil, 0
		}
		n = n.children.Get(i)
	}
	return nil, 0
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n, i := m.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.values.Get(i), true
}

// GetPtr returns a pointer to the value stored under key, or nil.
// The pointer is invalidated by the next Insert or Clear.
func (m *Map[K, V]) GetPtr(key K) *V {
	n, i := m.find(key)
	if n == nil {
		return nil
	}
	return n.values.At(i)
}

// GetKeyValue returns the stored key equal to key and its value.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	n, i := m.find(key)
	if n == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	return n.keys.Get(i), n.values.Get(i), true
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	n, _ := m.find(key)
	return n != nil
}

// Clear removes all entries. The order is kept.
func (m *Map[K, V]) Clear() {
	if m.root != nil {
		m.root.release()
		m.root = nil
	}
	m.length = 0
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	for k, v := range m.All() {
		return k, v, true
	}
	return key, value, false
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	for k, v := range m.Backward() {
		return k, v, true
	}
	return key, value, false
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root != nil {
			m.root.ascend(yield)
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root != nil {
			m.root.descend(yield)
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Ascend returns an iterator over the entries with keys not less than from,
// in ascending order.
func (m *Map[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root != nil {
			m.ascendFrom(m.root, from, yield)
		}
	}
}

func (m *Map[K, V]) ascendFrom(n *node[K, V], from K, yield func(K, V) bool) bool {
	i, found := m.search(n, from)
	keys, values := n.keys.Slice(), n.values.Slice()
	if n.leaf {
		for ; i < len(keys); i++ {
			if !yield(keys[i], values[i]) {
				return false
			}
		}
		return true
	}

	children := n.children.Slice()
	// Keys in children[i] are all less than keys[i]; when keys[i] == from the
	// whole subtree lies before from.
	if !found && !m.ascendFrom(children[i], from, yield) {
		return false
	}
	for ; i < len(keys); i++ {
		if !yield(keys[i], values[i]) || !children[i+1].ascend(yield) {
			return false
		}
	}
	return true
}
