// Package btree implements Map, an ordered map stored in a B-tree of
// configurable order.
//
// The order is the maximum number of children of an internal node, so a node
// holds at most order-1 keys. Every node keeps its keys, values and children in
// vec.Vec buffers sized for a full node.
//
// # Insertion
//
// Insertion makes a single top-down pass. A full root is split before the
// descent starts, which is the only way the tree grows in height. On the way
// down every full child is split before it is entered, so the node that finally
// receives the key always has room and nothing propagates back up.
//
// A split moves the keys after the median (index (order-1)/2) into a new
// sibling and promotes the median into the parent. The tree has no delete and
// never merges nodes; Clear discards the whole tree.
//
// # Ordering
//
// New orders keys with cmp.Compare. NewFunc accepts any total order.
//
// A Map is not safe for concurrent use.
package btree
