package tree

import (
	"cmp"

	"github.com/rogpeppe/containers/containerr"
)

// TreeMultiMap associates each key with a bucket of values, per
// spec.md §4.2's "bucket" value policy, backed by a TreeMap of slices.
type TreeMultiMap[K any, V any] struct {
	m *BalancedTree[K, []V]
}

// NewTreeMultiMap returns an empty multimap over a cmp.Ordered key type.
func NewTreeMultiMap[K cmp.Ordered, V any]() *TreeMultiMap[K, V] {
	return &TreeMultiMap[K, V]{m: NewRB[K, []V]()}
}

// NewTreeMultiMapFunc is NewTreeMultiMap for object key types.
func NewTreeMultiMapFunc[K any, V any](c func(a, b K) int) *TreeMultiMap[K, V] {
	return &TreeMultiMap[K, V]{m: NewRBFunc[K, []V](c)}
}

// Add appends value to key's bucket.
func (m *TreeMultiMap[K, V]) Add(key K, value V) {
	bucket, _ := m.m.Get(key)
	bucket = append(bucket, value)
	m.m.Set(key, bucket)
}

// HasEntry reports whether key's bucket contains a value equal to value
// per equal.
func (m *TreeMultiMap[K, V]) HasEntry(key K, value V, equal func(a, b V) bool) bool {
	bucket, ok := m.m.Get(key)
	if !ok {
		return false
	}
	for _, v := range bucket {
		if equal(v, value) {
			return true
		}
	}
	return false
}

// ValuesOf returns the bucket of values for key.
func (m *TreeMultiMap[K, V]) ValuesOf(key K) []V {
	bucket, _ := m.m.Get(key)
	return bucket
}

// DeleteValue removes the first value in key's bucket equal to value
// per equal, reporting whether one was found. An emptied bucket removes
// the key entirely.
func (m *TreeMultiMap[K, V]) DeleteValue(key K, value V, equal func(a, b V) bool) bool {
	bucket, ok := m.m.Get(key)
	if !ok {
		return false
	}
	for i, v := range bucket {
		if equal(v, value) {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				m.m.Delete(key)
			} else {
				m.m.Set(key, bucket)
			}
			return true
		}
	}
	return false
}

// DeleteValues removes every value in key's bucket equal to value per
// equal, reporting whether any were removed. An emptied bucket removes
// the key entirely.
func (m *TreeMultiMap[K, V]) DeleteValues(key K, value V, equal func(a, b V) bool) bool {
	bucket, ok := m.m.Get(key)
	if !ok {
		return false
	}
	kept := bucket[:0]
	removed := false
	for _, v := range bucket {
		if equal(v, value) {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	if !removed {
		return false
	}
	if len(kept) == 0 {
		m.m.Delete(key)
	} else {
		m.m.Set(key, kept)
	}
	return true
}

// FlatEntries returns every (key, value) pair, one per stored value.
func (m *TreeMultiMap[K, V]) FlatEntries() []struct {
	Key   K
	Value V
} {
	var out []struct {
		Key   K
		Value V
	}
	for k, bucket := range m.m.All() {
		for _, v := range bucket {
			out = append(out, struct {
				Key   K
				Value V
			}{k, v})
		}
	}
	return out
}

// DistinctSize returns the number of distinct keys.
func (m *TreeMultiMap[K, V]) DistinctSize() int { return m.m.Len() }

// TotalSize returns the total number of stored values across all keys.
func (m *TreeMultiMap[K, V]) TotalSize() int {
	n := 0
	for _, bucket := range m.m.All() {
		n += len(bucket)
	}
	return n
}

// TreeMultiSet counts occurrences of each element, per spec.md §4.2's
// "count" value policy, backed by a TreeMap[T, int].
type TreeMultiSet[T any] struct {
	m *BalancedTree[T, int]
}

// NewTreeMultiSet returns an empty multiset over a cmp.Ordered element
// type.
func NewTreeMultiSet[T cmp.Ordered]() *TreeMultiSet[T] {
	return &TreeMultiSet[T]{m: NewRB[T, int]()}
}

// NewTreeMultiSetFunc is NewTreeMultiSet for object element types.
func NewTreeMultiSetFunc[T any](c func(a, b T) int) *TreeMultiSet[T] {
	return &TreeMultiSet[T]{m: NewRBFunc[T, int](c)}
}

// Add increases x's count by n. n must be >= 0; a negative n panics with
// containerr.InvalidCount (Go's int parameters make "non-integer count"
// solely a negativity check, since fractional counts can't type-check).
func (s *TreeMultiSet[T]) Add(x T, n int) {
	checkCount(n)
	if n == 0 {
		return
	}
	cur, _ := s.m.Get(x)
	s.m.Set(x, cur+n)
}

// Count returns the number of occurrences of x.
func (s *TreeMultiSet[T]) Count(x T) int {
	n, _ := s.m.Get(x)
	return n
}

// SetCount fixes x's count to exactly n. A count of 0 removes x.
func (s *TreeMultiSet[T]) SetCount(x T, n int) {
	checkCount(n)
	if n == 0 {
		s.m.Delete(x)
		return
	}
	s.m.Set(x, n)
}

// Delete decreases x's count by n, removing x once its count reaches
// zero, and reports whether x was present beforehand. n must be >= 0; a
// negative n panics with containerr.InvalidCount, matching Add.
func (s *TreeMultiSet[T]) Delete(x T, n int) bool {
	checkCount(n)
	cur, ok := s.m.Get(x)
	if !ok {
		return false
	}
	if n >= cur {
		s.m.Delete(x)
	} else {
		s.m.Set(x, cur-n)
	}
	return true
}

// DeleteAll removes every occurrence of x, reporting whether it was
// present.
func (s *TreeMultiSet[T]) DeleteAll(x T) bool { return s.m.Delete(x) }

// DistinctSize returns the number of distinct elements.
func (s *TreeMultiSet[T]) DistinctSize() int { return s.m.Len() }

// TotalSize returns the sum of all element counts.
func (s *TreeMultiSet[T]) TotalSize() int {
	n := 0
	for _, c := range s.m.All() {
		n += c
	}
	return n
}

// TreeCounter is a TreeMultiSet under another name, matching spec.md's
// naming split between "counted elements" (TreeCounter) and "counted
// multiset" (TreeMultiSet) even though the underlying policy is
// identical.
type TreeCounter[K any] struct {
	s *TreeMultiSet[K]
}

// NewTreeCounter returns an empty counter over a cmp.Ordered key type.
func NewTreeCounter[K cmp.Ordered]() *TreeCounter[K] {
	return &TreeCounter[K]{s: NewTreeMultiSet[K]()}
}

// Add increases key's count by delta (which may be negative, clamped at
// zero by removing the key once its count would go non-positive).
func (c *TreeCounter[K]) Add(key K, delta int) {
	cur := c.s.Count(key)
	next := cur + delta
	if next <= 0 {
		c.s.DeleteAll(key)
		return
	}
	c.s.SetCount(key, next)
}

// Delete decreases key's count by n, removing it once its count reaches
// zero, and reports whether key was present beforehand.
func (c *TreeCounter[K]) Delete(key K, n int) bool { return c.s.Delete(key, n) }

// Count returns key's current count.
func (c *TreeCounter[K]) Count(key K) int { return c.s.Count(key) }

// SetCount fixes key's count to exactly n.
func (c *TreeCounter[K]) SetCount(key K, n int) { c.s.SetCount(key, n) }

// DistinctSize returns the number of distinct counted keys.
func (c *TreeCounter[K]) DistinctSize() int { return c.s.DistinctSize() }

// TotalSize returns the sum of all counts.
func (c *TreeCounter[K]) TotalSize() int { return c.s.TotalSize() }

func checkCount(n int) {
	if n < 0 {
		panic(containerr.InvalidCount)
	}
}
