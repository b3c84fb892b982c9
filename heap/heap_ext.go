package heap

import (
	"cmp"

	"github.com/rogpeppe/containers/containerr"
)

// NewOrdered returns a min-heap over items using the default ordering for
// any cmp.Ordered element type. Object element types must go through New
// with an explicit comparator, per spec.md §4.3.
func NewOrdered[E cmp.Ordered](items []E) *Heap[E] {
	return New(items, func(a, b E) bool { return a < b }, nil)
}

// checkLess panics with containerr.ComparatorRequired if less is nil. New
// calls it, and every other constructor (NewOrdered, Heapify) goes through
// New, so no heap can be built without a comparator.
func checkLess[E any](less func(E, E) bool) {
	if less == nil {
		panic(containerr.ComparatorRequired)
	}
}

// Peek returns the minimum element without removing it. It panics if the
// heap is empty.
func (h *Heap[E]) Peek() E {
	if len(h.Items) == 0 {
		panic("heap.Heap.Peek: empty heap")
	}
	return h.Items[0]
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[E]) IsEmpty() bool { return len(h.Items) == 0 }

// Has reports whether any element equal to x (per equal) is present.
func (h *Heap[E]) Has(x E, equal func(a, b E) bool) bool {
	for _, it := range h.Items {
		if equal(it, x) {
			return true
		}
	}
	return false
}

// Delete removes the first element equal to x (per equal), reporting
// whether one was found. It is a linear scan followed by the usual
// Remove-at-index sift, per spec.md §4.3.
func (h *Heap[E]) Delete(x E, equal func(a, b E) bool) bool {
	for i, it := range h.Items {
		if equal(it, x) {
			h.Remove(i)
			return true
		}
	}
	return false
}

// Heapify builds a new heap from src in O(n) using less for ordering.
func Heapify[E any](src []E, less func(E, E) bool) *Heap[E] {
	checkLess(less)
	items := make([]E, len(src))
	copy(items, src)
	return New(items, less, nil)
}

// Clone returns an independent copy of h; mutating the clone never
// affects h.
func (h *Heap[E]) Clone() *Heap[E] {
	items := make([]E, len(h.Items))
	copy(items, h.Items)
	return New(items, h.less, nil)
}

// Filter returns a new heap containing only the elements for which pred
// returns true.
func (h *Heap[E]) Filter(pred func(E) bool) *Heap[E] {
	var items []E
	for _, it := range h.Items {
		if pred(it) {
			items = append(items, it)
		}
	}
	return New(items, h.less, nil)
}

// MapSame transforms every element with f, rebuilding heap order for the
// (possibly changed) mapped values; the result has the same element type
// as the receiver. A Map to a different element type is simply
// MapSame composed with a fresh Heapify call at the caller, since Go's
// type system cannot express a same-method different-return type.
func (h *Heap[E]) MapSame(f func(E) E) *Heap[E] {
	items := make([]E, len(h.Items))
	for i, it := range h.Items {
		items[i] = f(it)
	}
	return New(items, h.less, nil)
}

// Sort drains a clone of h and returns its elements in increasing
// (less-ordered) sequence, leaving h untouched.
func (h *Heap[E]) Sort() []E {
	c := h.Clone()
	out := make([]E, 0, len(c.Items))
	for len(c.Items) > 0 {
		out = append(out, c.Pop())
	}
	return out
}
