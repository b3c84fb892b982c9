// Package cmpkey provides the total-ordering and key-validity contract
// shared by every ordered container in this module: trees, heaps, and the
// priority queue all compare keys through a Comparator instead of an
// interface method, the same shape as the teacher package's heap.New(items,
// less, setIndex) constructors generalized to a named type.
package cmpkey

import (
	"cmp"
	"time"

	"golang.org/x/exp/constraints"
)

// Comparator reports the ordering of a relative to b: negative if a<b,
// zero if a==b, positive if a>b. Equality of keys anywhere in this module
// is defined exclusively via Comparator(a,b) == 0.
type Comparator[T any] func(a, b T) int

// Ordered builds the default Comparator for any cmp.Ordered type, backed by
// the standard library's cmp.Compare.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a Comparator that orders the reverse of cmp, turning a
// min-oriented container into a max-oriented one without duplicating its
// logic (the same trick the teacher's example_pq_test.go applies by hand
// with i.priority > j.priority).
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Numeric builds a default Comparator for any ordered numeric type. It
// does not reject NaN (a NaN compares equal to every value); ValidateFloat
// is the check for that.
func Numeric[T constraints.Integer | constraints.Float]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Validator reports whether a key value is acceptable to a
// default-compared container. It returns a descriptive reason when not.
type Validator[T any] func(v T) (ok bool, reason string)

// ValidateFloat rejects NaN, the one float64 value for which the default
// ordering is not total.
func ValidateFloat[T ~float32 | ~float64](v T) (bool, string) {
	f := float64(v)
	if f != f { // NaN
		return false, "NaN is not totally ordered"
	}
	return true, ""
}

// ValidateTime rejects the zero time.Time (any t for which t.IsZero()
// reports true), which stands in for the source language's "invalid
// Date" case.
func ValidateTime(t time.Time) (bool, string) {
	if t.IsZero() {
		return false, "zero time.Time is not a valid key"
	}
	return true, ""
}
