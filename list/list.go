package list

import (
	"iter"

	"github.com/hupe1980/coll/vec"
)

// none marks a missing neighbour or an empty free list.
const none = -1

type entry[T any] struct {
	value      T
	prev, next int
}

// List is a doubly linked list.
type List[T any] struct {
	nodes *vec.Vec[entry[T]]
	head  int
	tail  int
	free  int // head of the free list, linked through next
	len   int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{
		nodes: vec.New[entry[T]](),
		head:  none,
		tail:  none,
		free:  none,
	}
}

func (l *List[T]) Len() int      { return l.len }
func (l *List[T]) IsEmpty() bool { return l.len == 0 }

// alloc stores value in a free slot, or a new one, and returns its index.
func (l *List[T]) alloc(value T, prev, next int) int {
	e := entry[T]{value: value, prev: prev, next: next}
	if l.free == none {
		l.nodes.Push(e)
		return l.nodes.Len() - 1
	}
	i := l.free
	l.free = l.nodes.Get(i).next
	l.nodes.Set(i, e)
	return i
}

// release returns slot i to the free list and hands back its value.
func (l *List[T]) release(i int) T {
	old := l.nodes.Set(i, entry[T]{prev: none, next: l.free})
	l.free = i
	return old.value
}

// PushFront inserts value at the front.
func (l *List[T]) PushFront(value T) {
	i := l.alloc(value, none, l.head)
	if l.head == none {
		l.tail = i
	} else {
		l.nodes.At(l.head).prev = i
	}
	l.head = i
	l.len++
}

// PushBack appends value at the back.
func (l *List[T]) PushBack(value T) {
	i := l.alloc(value, l.tail, none)
	if l.tail == none {
		l.head = i
	} else {
		l.nodes.At(l.tail).next = i
	}
	l.tail = i
	l.len++
}

// PopFront removes and returns the front element.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	i := l.head
	l.head = l.nodes.Get(i).next
	if l.head == none {
		l.tail = none
	} else {
		l.nodes.At(l.head).prev = none
	}
	l.len--
	return l.release(i), true
}

// PopBack removes and returns the back element.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	i := l.tail
	l.tail = l.nodes.Get(i).prev
	if l.tail == none {
		l.head = none
	} else {
		l.nodes.At(l.tail).next = none
	}
	l.len--
	return l.release(i), true
}

// Front returns the front element.
func (l *List[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.head).value, true
}

// Back returns the back element.
func (l *List[T]) Back() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.tail).value, true
}

// Clear removes all elements and releases the arena.
func (l *List[T]) Clear() {
	l.nodes.Free()
	l.head, l.tail, l.free = none, none, none
	l.len = 0
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != none; {
			e := l.nodes.Get(i)
			if !yield(e.value) {
				return
			}
			i = e.next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != none; {
			e := l.nodes.Get(i)
			if !yield(e.value) {
				return
			}
			i = e.prev
		}
	}
}
