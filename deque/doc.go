// Package deque implements Deque, a double-ended queue backed by a vec.Vec.
//
// Pushing and popping at the back are amortized O(1). The front operations
// shift every element and are O(n).
package deque
