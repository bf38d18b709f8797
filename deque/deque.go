package deque

import (
	"iter"

	"github.com/hupe1980/coll/vec"
)

// Deque is a double-ended queue.
type Deque[T any] struct {
	items *vec.Vec[T]
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{items: vec.New[T]()}
}

// WithCapacity creates an empty deque with room for n elements.
func WithCapacity[T any](n int) *Deque[T] {
	return &Deque[T]{items: vec.WithCapacity[T](n)}
}

func (d *Deque[T]) Len() int      { return d.items.Len() }
func (d *Deque[T]) Cap() int      { return d.items.Cap() }
func (d *Deque[T]) IsEmpty() bool { return d.items.IsEmpty() }

// PushBack appends value at the back.
func (d *Deque[T]) PushBack(value T) {
	d.items.Push(value)
}

// PushFront inserts value at the front.
func (d *Deque[T]) PushFront(value T) {
	d.items.Insert(0, value)
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.items.Pop()
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.items.IsEmpty() {
		var zero T
		return zero, false
	}
	return d.items.Remove(0), true
}

// Front returns the front element.
func (d *Deque[T]) Front() (T, bool) {
	return d.items.First()
}

// Back returns the back element.
func (d *Deque[T]) Back() (T, bool) {
	return d.items.Last()
}

// Get returns the element at index i counted from the front.
// It panics if i is out of range.
func (d *Deque[T]) Get(i int) T {
	return d.items.Get(i)
}

// Set replaces the element at index i and returns the previous one.
// It panics if i is out of range.
func (d *Deque[T]) Set(i int, value T) T {
	return d.items.Set(i, value)
}

// Clear removes all elements and keeps the capacity.
func (d *Deque[T]) Clear() {
	d.items.Clear()
}

// All returns an iterator over the elements from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return d.items.All()
}
