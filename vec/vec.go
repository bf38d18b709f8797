package vec

import (
	"iter"

	"github.com/hupe1980/coll/internal/invariant"
)

// Vec is a growable array of T.
// The zero value is an empty vector with zero capacity, ready to use.
type Vec[T any] struct {
	buf []T // len(buf) is the capacity
	len int
}

// New creates an empty vector without allocating.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity creates an empty vector whose buffer holds exactly n elements.
// No buffer is allocated for n == 0.
func WithCapacity[T any](n int) *Vec[T] {
	invariant.NonNegative(n, "capacity")
	v := &Vec[T]{}
	if n > 0 {
		v.buf = make([]T, n)
	}
	return v
}

// From creates a vector holding a copy of values, sized exactly to them.
func From[T any](values ...T) *Vec[T] {
	v := WithCapacity[T](len(values))
	copy(v.buf, values)
	v.len = len(values)
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of elements the buffer can hold without growing.
func (v *Vec[T]) Cap() int { return len(v.buf) }

// IsEmpty reports whether the vector has no live elements.
func (v *Vec[T]) IsEmpty() bool { return v.len == 0 }

// Push appends value, doubling the capacity first if the buffer is full.
func (v *Vec[T]) Push(value T) {
	if v.len == len(v.buf) {
		v.realloc(max(1, len(v.buf)*2))
	}
	v.buf[v.len] = value
	v.len++
}

// Pop removes and returns the last element. ok is false if the vector is empty.
func (v *Vec[T]) Pop() (value T, ok bool) {
	if v.len == 0 {
		return value, false
	}
	v.len--
	value = v.buf[v.len]
	var zero T
	v.buf[v.len] = zero
	return value, true
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) T {
	invariant.Index(i, v.len)
	return v.buf[i]
}

// Set replaces the element at i and returns the previous one.
func (v *Vec[T]) Set(i int, value T) T {
	invariant.Index(i, v.len)
	old := v.buf[i]
	v.buf[i] = value
	return old
}

// At returns a pointer to the element at i.
// The pointer is invalidated by any operation that reallocates or shifts elements.
func (v *Vec[T]) At(i int) *T {
	invariant.Index(i, v.len)
	return &v.buf[i]
}

// First returns the first element, if any.
func (v *Vec[T]) First() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	return v.buf[0], true
}

// Last returns the last element, if any.
func (v *Vec[T]) Last() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	return v.buf[v.len-1], true
}

// Insert places value at index i, shifting the elements at [i, Len) one slot right.
// i may equal Len, which appends.
func (v *Vec[T]) Insert(i int, value T) {
	invariant.InsertIndex(i, v.len)
	if v.len == len(v.buf) {
		v.realloc(max(1, len(v.buf)*2))
	}
	// copy is a memmove, overlapping ranges are fine.
	copy(v.buf[i+1:v.len+1], v.buf[i:v.len])
	v.buf[i] = value
	v.len++
}

// Remove deletes and returns the element at i, shifting later elements left.
func (v *Vec[T]) Remove(i int) T {
	invariant.Index(i, v.len)
	value := v.buf[i]
	copy(v.buf[i:v.len-1], v.buf[i+1:v.len])
	v.len--
	var zero T
	v.buf[v.len] = zero
	return value
}

// SwapRemove deletes and returns the element at i in O(1) by moving the last
// element into its place. Order is not preserved.
func (v *Vec[T]) SwapRemove(i int) T {
	invariant.Index(i, v.len)
	value := v.buf[i]
	v.len--
	v.buf[i] = v.buf[v.len]
	var zero T
	v.buf[v.len] = zero
	return value
}

// Swap exchanges the elements at i and j.
func (v *Vec[T]) Swap(i, j int) {
	invariant.Index(i, v.len)
	invariant.Index(j, v.len)
	v.buf[i], v.buf[j] = v.buf[j], v.buf[i]
}

// Reserve ensures room for at least additional more elements, doubling the
// capacity until it suffices. It is a no-op if the capacity is already enough.
func (v *Vec[T]) Reserve(additional int) {
	invariant.NonNegative(additional, "additional")
	need := invariant.Sum(v.len, additional)
	if need <= len(v.buf) {
		return
	}
	c := max(1, len(v.buf))
	for c < need {
		c = invariant.Double(c)
	}
	v.realloc(c)
}

// ReserveExact grows the capacity to exactly Len()+additional if it is smaller.
func (v *Vec[T]) ReserveExact(additional int) {
	invariant.NonNegative(additional, "additional")
	if need := invariant.Sum(v.len, additional); need > len(v.buf) {
		v.realloc(need)
	}
}

// ShrinkTo reduces the capacity to max(Len(), n) if that is smaller than the
// current capacity.
func (v *Vec[T]) ShrinkTo(n int) {
	invariant.NonNegative(n, "capacity")
	if target := max(v.len, n); target < len(v.buf) {
		v.realloc(target)
	}
}

// ShrinkToFit reduces the capacity to Len().
func (v *Vec[T]) ShrinkToFit() {
	v.ShrinkTo(0)
}

// Truncate releases the elements at [n, Len) in reverse order, keeping the capacity.
// It is a no-op if n >= Len.
func (v *Vec[T]) Truncate(n int) {
	invariant.NonNegative(n, "length")
	var zero T
	for v.len > n {
		v.len--
		v.buf[v.len] = zero
	}
}

// Clear releases every element, keeping the capacity.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Free releases every element and then the buffer. The vector stays usable as
// an empty vector with zero capacity, and calling Free again is a no-op.
func (v *Vec[T]) Free() {
	v.Clear()
	v.buf = nil
}

// Take moves the buffer and its elements into a new vector. v is left empty
// with a fresh buffer of the same capacity.
func (v *Vec[T]) Take() *Vec[T] {
	out := &Vec[T]{buf: v.buf, len: v.len}
	v.buf = nil
	v.len = 0
	if n := len(out.buf); n > 0 {
		v.buf = make([]T, n)
	}
	return out
}

// Append moves every element of other to the end of v. other is left empty but
// keeps its capacity. Appending a vector to itself is a no-op.
func (v *Vec[T]) Append(other *Vec[T]) {
	if other == v || other.len == 0 {
		return
	}
	n := other.len
	v.Reserve(n)
	copy(v.buf[v.len:], other.buf[:n])
	v.len += n
	clear(other.buf[:n])
	other.len = 0
}

// Extend appends copies of values.
func (v *Vec[T]) Extend(values ...T) {
	v.Reserve(len(values))
	copy(v.buf[v.len:], values)
	v.len += len(values)
}

// Retain keeps only the elements for which keep returns true, preserving their
// order, and releases the rest. It makes a single forward pass.
func (v *Vec[T]) Retain(keep func(T) bool) {
	w := 0
	for r := 0; r < v.len; r++ {
		if !keep(v.buf[r]) {
			continue
		}
		if w != r {
			v.buf[w] = v.buf[r]
		}
		w++
	}
	clear(v.buf[w:v.len])
	v.len = w
}

// Clone returns a copy of v whose capacity equals its length.
// Elements are copied by assignment.
func (v *Vec[T]) Clone() *Vec[T] {
	return From(v.buf[:v.len]...)
}

// Slice returns the live elements as a slice sharing v's buffer.
// The view is invalidated by the next mutation of v; appending to it never
// touches the reserved region.
func (v *Vec[T]) Slice() []T {
	return v.buf[:v.len:v.len]
}

// All returns an iterator over index/element pairs in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.len - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// realloc moves the live elements into a fresh buffer of exactly n slots and
// releases the old one. n must be >= v.len.
func (v *Vec[T]) realloc(n int) {
	var next []T
	if n > 0 {
		next = make([]T, n)
		copy(next, v.buf[:v.len])
	}
	clear(v.buf)
	v.buf = next
}
