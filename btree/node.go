package btree

import "github.com/hupe1980/coll/vec"

type node[K, V any] struct {
	keys     *vec.Vec[K]
	values   *vec.Vec[V]
	children *vec.Vec[*node[K, V]] // empty for leaves
	leaf     bool
}

func newNode[K, V any](leaf bool, order int) *node[K, V] {
	n := &node[K, V]{
		keys:     vec.WithCapacity[K](order - 1),
		values:   vec.WithCapacity[V](order - 1),
		children: vec.New[*node[K, V]](),
		leaf:     leaf,
	}
	if !leaf {
		n.children.ReserveExact(order)
	}
	return n
}

func (n *node[K, V]) full(order int) bool {
	return n.keys.Len() == order-1
}

// release frees the subtree depth-first.
func (n *node[K, V]) release() {
	for c := range n.children.Values() {
		c.release()
	}
	n.children.Free()
	n.keys.Free()
	n.values.Free()
}

// ascend yields the subtree in key order. It returns false if yield asked to stop.
func (n *node[K, V]) ascend(yield func(K, V) bool) bool {
	keys, values := n.keys.Slice(), n.values.Slice()
	if n.leaf {
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return false
			}
		}
		return true
	}
	children := n.children.Slice()
	for i := range keys {
		if !children[i].ascend(yield) || !yield(keys[i], values[i]) {
			return false
		}
	}
	return children[len(keys)].ascend(yield)
}

// descend yields the subtree in reverse key order.
func (n *node[K, V]) descend(yield func(K, V) bool) bool {
	keys, values := n.keys.Slice(), n.values.Slice()
	if n.leaf {
		for i := len(keys) - 1; i >= 0; i-- {
			if !yield(keys[i], values[i]) {
				return false
			}
		}
		return true
	}
	children := n.children.Slice()
	if !children[len(keys)].descend(yield) {
		return false
	}
	for i := len(keys) - 1; i >= 0; i-- {
		if !yield(keys[i], values[i]) || !children[i].descend(yield) {
			return false
		}
	}
	return true
}
