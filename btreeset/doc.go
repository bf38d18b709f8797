// Package btreeset implements Set, an ordered set backed by a btree.Map with
// empty values.
//
// The tree has no delete, so every removal (Remove, Take, Retain, PopFirst,
// PopLast and SplitOff) rebuilds it from the remaining keys in O(n log n).
// Lookups, insertion and ordered iteration keep the tree's costs.
//
// The set algebra operations merge both operands in ascending order and
// require both sets to share one ordering.
package btreeset
