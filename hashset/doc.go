// Package hashset implements Set, an unordered set backed by a hashmap.Map
// with empty values.
//
// The set algebra operations (Union, Intersection, Difference and
// SymmetricDifference) return lazy iterators. They walk one operand and probe
// the other, so neither set may be modified while an iterator is in use.
//
// Sets of integer keys convert to and from roaring bitmaps with ToBitmap and
// FromBitmap.
package hashset
