// Package fenwick implements a Binary Indexed Tree (BIT) for O(log n)
// prefix-sum queries and point updates over integers, the misc-leaf
// spec.md lists alongside segtree for cheaper cumulative-sum workloads.
package fenwick

import "fmt"

// BIT is a Fenwick tree over int64 values, 0-indexed at the API
// boundary (internally 1-indexed, per the classic layout).
type BIT struct {
	tree []int64
	n    int
}

// New returns a BIT of length n, every position initialized to zero.
func New(n int) *BIT {
	if n < 0 {
		panic("fenwick: negative length")
	}
	return &BIT{tree: make([]int64, n+1), n: n}
}

// FromSlice returns a BIT initialized from values.
func FromSlice(values []int64) *BIT {
	b := New(len(values))
	for i, v := range values {
		b.Add(i, v)
	}
	return b
}

// Len returns the number of positions.
func (b *BIT) Len() int { return b.n }

func (b *BIT) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("fenwick: index %d out of range for length %d", i, b.n))
	}
}

// Add adds delta to position i.
func (b *BIT) Add(i int, delta int64) {
	b.checkIndex(i)
	for i++; i <= b.n; i += i & (-i) {
		b.tree[i] += delta
	}
}

// Set assigns v to position i, deriving the needed delta from the
// current prefix sums.
func (b *BIT) Set(i int, v int64) {
	cur := b.Get(i)
	b.Add(i, v-cur)
}

// PrefixSum returns the sum of positions [0, i).
func (b *BIT) PrefixSum(i int) int64 {
	if i < 0 || i > b.n {
		panic(fmt.Sprintf("fenwick: prefix bound %d out of range for length %d", i, b.n))
	}
	var sum int64
	for ; i > 0; i -= i & (-i) {
		sum += b.tree[i]
	}
	return sum
}

// RangeSum returns the sum of positions [lo, hi).
func (b *BIT) RangeSum(lo, hi int) int64 {
	return b.PrefixSum(hi) - b.PrefixSum(lo)
}

// Get returns the current value at position i.
func (b *BIT) Get(i int) int64 {
	b.checkIndex(i)
	return b.RangeSum(i, i+1)
}
