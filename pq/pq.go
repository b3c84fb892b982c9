// Package pq implements a priority queue as a thin wrapper over heap.Heap,
// per spec.md §4.5: ordered drain plus a handful of naming niceties
// (Leaf, Sort) on top of the binary heap's raw Push/Pop.
package pq

import (
	"cmp"

	"github.com/rogpeppe/containers/heap"
)

// Queue is a priority queue over element type T.
type Queue[T any] struct {
	h *heap.Heap[T]
}

// NewMin returns a priority queue that polls the least element first,
// per less.
func NewMin[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: heap.New[T](nil, less, nil)}
}

// NewMax returns a priority queue that polls the greatest element first,
// per less (the caller's natural "a should come before b" ordering).
func NewMax[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: heap.New[T](nil, func(a, b T) bool { return less(b, a) }, nil)}
}

// NewMinOrdered returns a min priority queue over a default-ordered
// primitive element type.
func NewMinOrdered[T cmp.Ordered]() *Queue[T] {
	return NewMin[T](func(a, b T) bool { return a < b })
}

// NewMaxOrdered returns a max priority queue over a default-ordered
// primitive element type.
func NewMaxOrdered[T cmp.Ordered]() *Queue[T] {
	return NewMax[T](func(a, b T) bool { return a < b })
}

// Heapify builds a priority queue from an existing slice in O(n).
func Heapify[T any](items []T, less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: heap.Heapify(items, less)}
}

// Add inserts x into the queue.
func (q *Queue[T]) Add(x T) { q.h.Push(x) }

// Poll removes and returns the frontmost element. It panics if the queue
// is empty.
func (q *Queue[T]) Poll() T { return q.h.Pop() }

// Peek returns the frontmost element without removing it. It panics if
// the queue is empty.
func (q *Queue[T]) Peek() T { return q.h.Peek() }

// Leaf returns a leaf element (any element with no descendants smaller
// according to the ordering) — useful as a cheap "some large-ish element"
// probe without a full Sort. If the heap has fewer than 2 elements, it
// returns the same element Peek would.
func (q *Queue[T]) Leaf() T {
	items := q.h.Items
	if len(items) < 2 {
		return q.Peek()
	}
	return items[len(items)-1]
}

// Has reports whether any element equal to x (per equal) is queued.
func (q *Queue[T]) Has(x T, equal func(a, b T) bool) bool {
	return q.h.Has(x, equal)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool { return q.h.IsEmpty() }

// Clear empties the queue.
func (q *Queue[T]) Clear() { q.h.Items = nil }

// Sort drains a clone of the queue's ordering into a slice, leaving q
// untouched.
func (q *Queue[T]) Sort() []T { return q.h.Sort() }
