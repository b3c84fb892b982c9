package tree

import (
	"cmp"

	"github.com/rogpeppe/containers/merge"
)

// TreeMap is BalancedTree used in its natural key/value role; it exists
// as a named alias purely so callers reaching for "a sorted map" don't
// need to know the underlying engine type's name.
type TreeMap[K any, V any] = BalancedTree[K, V]

// NewTreeMap returns a red-black TreeMap, the default balanced ordering
// per spec.md §4.1 (red-black trades a looser height bound for cheaper
// rebalancing than AVL, the usual general-purpose default).
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] { return NewRB[K, V]() }

// NewTreeMapFunc is NewTreeMap for object keys via an explicit comparator.
func NewTreeMapFunc[K any, V any](c func(a, b K) int) *TreeMap[K, V] {
	return NewRBFunc[K, V](c)
}

// TreeSet is a sorted set of distinct elements, backed by a TreeMap whose
// values are the zero-size struct{}.
type TreeSet[T any] struct {
	m *BalancedTree[T, struct{}]
}

// NewTreeSet returns an empty TreeSet over a cmp.Ordered element type.
func NewTreeSet[T cmp.Ordered]() *TreeSet[T] {
	return &TreeSet[T]{m: NewRB[T, struct{}]()}
}

// NewTreeSetFunc is NewTreeSet for object element types via an explicit
// comparator.
func NewTreeSetFunc[T any](c func(a, b T) int) *TreeSet[T] {
	return &TreeSet[T]{m: NewRBFunc[T, struct{}](c)}
}

// Add inserts x, reporting whether it was newly added.
func (s *TreeSet[T]) Add(x T) bool {
	_, existed := s.m.Set(x, struct{}{})
	return !existed
}

// Delete removes x, reporting whether it was present.
func (s *TreeSet[T]) Delete(x T) bool { return s.m.Delete(x) }

// Has reports whether x is a member.
func (s *TreeSet[T]) Has(x T) bool { return s.m.Has(x) }

// Len returns the number of elements.
func (s *TreeSet[T]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set has no elements.
func (s *TreeSet[T]) IsEmpty() bool { return s.m.IsEmpty() }

// First returns the smallest element.
func (s *TreeSet[T]) First() (T, bool) {
	k, _, ok := s.m.First()
	return k, ok
}

// Last returns the largest element.
func (s *TreeSet[T]) Last() (T, bool) {
	k, _, ok := s.m.Last()
	return k, ok
}

// All iterates the set's elements in increasing order.
func (s *TreeSet[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (s *TreeSet[T]) Clone() *TreeSet[T] { return &TreeSet[T]{m: s.m.Clone()} }

// setMergeResult carries one merged element through merge.MergeGeneral
// alongside whether it should survive into the output set, since a
// MergeGeneral join callback must return a single value.
type setMergeResult[T any] struct {
	x  T
	ok bool
}

// setJoin mirrors merge.Join but also records whether the merged key
// should be kept in the output set — letting one MergeGeneral walk over
// both sides' sorted All() streams implement Union, Intersect and Diff
// by varying only the keep predicate.
func setJoin[T any](keep func(hasLeft, hasRight bool) bool) func(x0 T, has0 bool, x1 T, has1 bool) setMergeResult[T] {
	return func(x0 T, has0 bool, x1 T, has1 bool) setMergeResult[T] {
		x := x0
		if !has0 {
			x = x1
		}
		return setMergeResult[T]{x: x, ok: keep(has0, has1)}
	}
}

func (s *TreeSet[T]) merged(other *TreeSet[T], keep func(hasLeft, hasRight bool) bool) *TreeSet[T] {
	out := &TreeSet[T]{m: &BalancedTree[T, struct{}]{cmp: s.m.cmp, kind: s.m.kind, validate: s.m.validate}}
	for r := range merge.MergeGeneral(s.All(), other.All(), s.m.cmp, setJoin[T](keep)) {
		if r.ok {
			out.Add(r.x)
		}
	}
	return out
}

// Union returns a new set containing every element of s and other,
// computed with a single linear merge pass over both sorted element
// streams rather than a full re-insertion of other's elements.
func (s *TreeSet[T]) Union(other *TreeSet[T]) *TreeSet[T] {
	return s.merged(other, func(hasLeft, hasRight bool) bool { return true })
}

// Intersect returns a new set containing only elements present in both
// s and other.
func (s *TreeSet[T]) Intersect(other *TreeSet[T]) *TreeSet[T] {
	return s.merged(other, func(hasLeft, hasRight bool) bool { return hasLeft && hasRight })
}

// Diff returns a new set containing elements of s not present in other.
func (s *TreeSet[T]) Diff(other *TreeSet[T]) *TreeSet[T] {
	return s.merged(other, func(hasLeft, hasRight bool) bool { return hasLeft && !hasRight })
}
