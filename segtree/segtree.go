// Package segtree implements a segment tree over an associative combine
// function, supporting point update and range query in O(log n), the
// misc-leaf spec.md lists for range-aggregate workloads that the
// ordered-tree engine isn't shaped for.
package segtree

import "fmt"

// SegmentTree supports range queries over an associative, commutative-
// or-not combine function (sum, min, max, gcd, ...) with point updates.
type SegmentTree[T any] struct {
	n       int
	tree    []T
	combine func(a, b T) T
	zero    T
}

// New builds a segment tree over the initial values, combining ranges
// with combine. zero must be combine's identity element (e.g. 0 for
// sum, +Inf for min).
func New[T any](values []T, zero T, combine func(a, b T) T) *SegmentTree[T] {
	n := len(values)
	st := &SegmentTree[T]{
		n:       n,
		tree:    make([]T, 2*n),
		combine: combine,
		zero:    zero,
	}
	for i, v := range values {
		st.tree[n+i] = v
	}
	for i := n - 1; i >= 1; i-- {
		st.tree[i] = combine(st.tree[2*i], st.tree[2*i+1])
	}
	return st
}

// Len returns the number of leaves (the original value count).
func (st *SegmentTree[T]) Len() int { return st.n }

func (st *SegmentTree[T]) checkIndex(i int) {
	if i < 0 || i >= st.n {
		panic(fmt.Sprintf("segtree: index %d out of range for length %d", i, st.n))
	}
}

// Set assigns v to position i in O(log n).
func (st *SegmentTree[T]) Set(i int, v T) {
	st.checkIndex(i)
	i += st.n
	st.tree[i] = v
	for i > 1 {
		i /= 2
		st.tree[i] = st.combine(st.tree[2*i], st.tree[2*i+1])
	}
}

// At returns the value currently stored at position i.
func (st *SegmentTree[T]) At(i int) T {
	st.checkIndex(i)
	return st.tree[st.n+i]
}

// Query combines every value in the half-open range [lo, hi) and
// returns the result. It panics if the range is invalid.
func (st *SegmentTree[T]) Query(lo, hi int) T {
	if lo < 0 || hi > st.n || lo > hi {
		panic(fmt.Sprintf("segtree: invalid range [%d,%d) for length %d", lo, hi, st.n))
	}
	if lo == hi {
		return st.zero
	}
	resLeft, resRight := st.zero, st.zero
	haveLeft, haveRight := false, false
	lo += st.n
	hi += st.n
	for lo < hi {
		if lo&1 == 1 {
			if !haveLeft {
				resLeft, haveLeft = st.tree[lo], true
			} else {
				resLeft = st.combine(resLeft, st.tree[lo])
			}
			lo++
		}
		if hi&1 == 1 {
			hi--
			if !haveRight {
				resRight, haveRight = st.tree[hi], true
			} else {
				resRight = st.combine(st.tree[hi], resRight)
			}
		}
		lo /= 2
		hi /= 2
	}
	switch {
	case haveLeft && haveRight:
		return st.combine(resLeft, resRight)
	case haveLeft:
		return resLeft
	default:
		return resRight
	}
}
