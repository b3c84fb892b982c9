package list

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/containers/containerr"
)

// DNode is an opaque handle into a Doubly list.
type DNode[T any] struct {
	value      T
	next, prev *DNode[T]
}

// Value returns the value held by n.
func (n *DNode[T]) Value() T { return n.value }

// Next returns the following node, or nil at the tail.
func (n *DNode[T]) Next() *DNode[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *DNode[T]) Prev() *DNode[T] { return n.prev }

// Doubly is a doubly linked list. Unlike Singly, Pop, GetBackward, and
// tail-relative inserts are all O(1), per spec.md §4.7.
type Doubly[T any] struct {
	head, tail *DNode[T]
	length     int
	maxLen     int
	equal      func(a, b T) bool
}

// NewDoubly returns an empty doubly linked list. See Singly's maxLen
// documentation for overflow behavior.
func NewDoubly[T any](maxLen int) *Doubly[T] {
	return &Doubly[T]{maxLen: maxLen}
}

// SetEquality installs the equality function used by Delete,
// CountOccurrences, and LastIndexOf. FindIndex takes its own predicate.
func (l *Doubly[T]) SetEquality(eq func(a, b T) bool) { l.equal = eq }

// Len returns the number of elements in the list.
func (l *Doubly[T]) Len() int { return l.length }

// IsEmpty reports whether the list has no elements.
func (l *Doubly[T]) IsEmpty() bool { return l.length == 0 }

// Head returns the first node, or nil if empty.
func (l *Doubly[T]) Head() *DNode[T] { return l.head }

// Tail returns the last node, or nil if empty.
func (l *Doubly[T]) Tail() *DNode[T] { return l.tail }

func (l *Doubly[T]) linkTail(n *DNode[T]) {
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

func (l *Doubly[T]) linkHead(n *DNode[T]) {
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

func (l *Doubly[T]) unlink(n *DNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev = nil, nil
	l.length--
}

// Push appends x to the end of the list, trimming the head on maxLen
// overflow.
func (l *Doubly[T]) Push(x T) {
	l.PushNode(x)
}

// PushNode behaves like Push but returns the opaque handle to the newly
// inserted node, letting the caller chain AddBefore/AddAfter calls off it.
func (l *Doubly[T]) PushNode(x T) *DNode[T] {
	n := &DNode[T]{value: x}
	l.linkTail(n)
	if l.maxLen > 0 && l.length > l.maxLen {
		l.Shift()
	}
	return n
}

// Pop removes and returns the last element in O(1).
func (l *Doubly[T]) Pop() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.value, true
}

// Unshift inserts x at the front, trimming the tail on maxLen overflow.
func (l *Doubly[T]) Unshift(x T) {
	l.linkHead(&DNode[T]{value: x})
	if l.maxLen > 0 && l.length > l.maxLen {
		l.Pop()
	}
}

// Shift removes and returns the first element.
func (l *Doubly[T]) Shift() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	l.unlink(n)
	return n.value, true
}

// AddBefore inserts x immediately before node n, which must belong to l.
func (l *Doubly[T]) AddBefore(n *DNode[T], x T) *DNode[T] {
	nn := &DNode[T]{value: x, prev: n.prev, next: n}
	if n.prev != nil {
		n.prev.next = nn
	} else {
		l.head = nn
	}
	n.prev = nn
	l.length++
	return nn
}

// AddAfter inserts x immediately after node n, which must belong to l.
func (l *Doubly[T]) AddAfter(n *DNode[T], x T) *DNode[T] {
	nn := &DNode[T]{value: x, prev: n, next: n.next}
	if n.next != nil {
		n.next.prev = nn
	} else {
		l.tail = nn
	}
	n.next = nn
	l.length++
	return nn
}

// RemoveNode removes n from the list. n must belong to l.
func (l *Doubly[T]) RemoveNode(n *DNode[T]) {
	l.unlink(n)
}

func (l *Doubly[T]) nodeAt(i int) *DNode[T] {
	if i < 0 || i >= l.length {
		return nil
	}
	// Walk from whichever end is nearer, per spec.md's "at(i) is O(i)
	// from the nearer end".
	if i <= l.length/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// At returns the i'th element. It panics if i is out of [0, Len()).
func (l *Doubly[T]) At(i int) T {
	n := l.nodeAt(i)
	if n == nil {
		panic("list.Doubly.At: index out of range")
	}
	return n.value
}

// GetNodeAt returns the opaque node handle at index i, or nil if out of
// range.
func (l *Doubly[T]) GetNodeAt(i int) *DNode[T] { return l.nodeAt(i) }

// SetAt overwrites the value of the i'th element.
func (l *Doubly[T]) SetAt(i int, v T) {
	n := l.nodeAt(i)
	if n == nil {
		panic("list.Doubly.SetAt: index out of range")
	}
	n.value = v
}

// AddAt inserts v so that it becomes the i'th element. i may equal Len().
func (l *Doubly[T]) AddAt(i int, v T) {
	switch {
	case i < 0 || i > l.length:
		panic("list.Doubly.AddAt: index out of range")
	case i == 0:
		l.Unshift(v)
	case i == l.length:
		l.Push(v)
	default:
		l.AddBefore(l.nodeAt(i), v)
	}
}

// DeleteAt removes and returns the i'th element.
func (l *Doubly[T]) DeleteAt(i int) T {
	n := l.nodeAt(i)
	if n == nil {
		panic("list.Doubly.DeleteAt: index out of range")
	}
	l.unlink(n)
	return n.value
}

// Delete removes the first node whose value equals x.
func (l *Doubly[T]) Delete(x T) bool {
	if l.equal == nil {
		panic("list.Doubly.Delete: call SetEquality first")
	}
	for n := l.head; n != nil; n = n.next {
		if l.equal(n.value, x) {
			l.unlink(n)
			return true
		}
	}
	return false
}

// CountOccurrences counts nodes whose value equals x.
func (l *Doubly[T]) CountOccurrences(x T) int {
	if l.equal == nil {
		panic("list.Doubly.CountOccurrences: call SetEquality first")
	}
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if l.equal(cur.value, x) {
			n++
		}
	}
	return n
}

// FindIndex returns the index of the first node matching pred, or -1.
func (l *Doubly[T]) FindIndex(pred func(T) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last node equal to x, or -1.
func (l *Doubly[T]) LastIndexOf(x T) int {
	if l.equal == nil {
		panic("list.Doubly.LastIndexOf: call SetEquality first")
	}
	i := l.length - 1
	for n := l.tail; n != nil; n = n.prev {
		if l.equal(n.value, x) {
			return i
		}
		i--
	}
	return -1
}

// Reverse reverses the list in place.
func (l *Doubly[T]) Reverse() {
	cur := l.head
	l.head, l.tail = l.tail, l.head
	for cur != nil {
		next := cur.next
		cur.next, cur.prev = cur.prev, cur.next
		cur = next
	}
}

// Fill overwrites every element's value with x.
func (l *Doubly[T]) Fill(x T) {
	for n := l.head; n != nil; n = n.next {
		n.value = x
	}
}

// Slice returns a new slice containing the elements in [lo, hi).
func (l *Doubly[T]) Slice(lo, hi int) []T {
	if lo < 0 || hi > l.length || lo > hi {
		panic("list.Doubly.Slice: range out of bounds")
	}
	out := make([]T, 0, hi-lo)
	n := l.nodeAt(lo)
	for i := lo; i < hi; i++ {
		out = append(out, n.value)
		n = n.next
	}
	return out
}

// Splice removes count elements starting at index i and returns them,
// replacing them with repl in place. As with Singly.Splice, an
// out-of-range bulk request returns containerr.IndexOutOfRange rather
// than panicking.
func (l *Doubly[T]) Splice(i, count int, repl ...T) ([]T, error) {
	if i < 0 || count < 0 || i+count > l.length {
		return nil, fmt.Errorf("%w: list.Doubly.Splice(%d, %d) on length %d", containerr.IndexOutOfRange, i, count, l.length)
	}
	removed := make([]T, 0, count)
	for k := 0; k < count; k++ {
		removed = append(removed, l.DeleteAt(i))
	}
	for k := len(repl) - 1; k >= 0; k-- {
		l.AddAt(i, repl[k])
	}
	return removed, nil
}

// Concat appends the elements of other to the end of l, leaving other
// empty.
func (l *Doubly[T]) Concat(other *Doubly[T]) {
	for {
		v, ok := other.Shift()
		if !ok {
			break
		}
		l.Push(v)
	}
}

// Sort reorders the list's values per less, using a simple stable
// insertion merge over the node values (lists are expected to be small;
// spec.md does not call out an asymptotic bound for list Sort).
func (l *Doubly[T]) Sort(less func(a, b T) bool) {
	vals := l.ToSlice()
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && less(v, vals[j]) {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
	n := l.head
	for _, v := range vals {
		n.value = v
		n = n.next
	}
}

// Join concatenates the string form of every element, separated by sep.
func (l *Doubly[T]) Join(sep string, str func(T) string) string {
	var b []byte
	first := true
	for n := l.head; n != nil; n = n.next {
		if !first {
			b = append(b, sep...)
		}
		first = false
		b = append(b, str(n.value)...)
	}
	return string(b)
}

// All returns a forward iterator over the list's values.
func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// GetBackward returns a reverse iterator over the list's values, from tail
// to head.
func (l *Doubly[T]) GetBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice drains the list into a new slice in head-to-tail order.
func (l *Doubly[T]) ToSlice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clear empties the list, detaching every node.
func (l *Doubly[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// Clone returns a shallow copy of the list with freshly allocated nodes.
func (l *Doubly[T]) Clone() *Doubly[T] {
	out := NewDoubly[T](l.maxLen)
	out.equal = l.equal
	for n := l.head; n != nil; n = n.next {
		out.Push(n.value)
	}
	return out
}
