// Package iterx provides the lazy traversal vocabulary shared by every
// container in this module: Map/Filter/Reduce/ForEach/Some/Every/Collect
// over the standard iter.Seq / iter.Seq2 range-over-func iterators
// (Go 1.23+). It is the idiomatic replacement for the source library's
// shared "iteration base class" and protected spawnLike hook (spec.md
// §4, §9): instead of a base type every container embeds, containers
// expose an All() iter.Seq[...] method and callers reach for these free
// functions, the same restructuring the teacher package's iter/iter.go
// gestures at with its own hand-rolled Iter[T]/Map/Select/Reduce, now
// expressed against the standard iterator shape.
package iterx

import "iter"

// Collect drains seq into a new slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Map lazily transforms every value of seq with f.
func Map[S, T any](seq iter.Seq[S], f func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter lazily yields only the values of seq for which pred returns true.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Reduce folds seq into a single accumulator value, left to right.
func Reduce[S, T any](seq iter.Seq[T], initial S, f func(S, T) S) S {
	acc := initial
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// ForEach calls f once per value of seq.
func ForEach[T any](seq iter.Seq[T], f func(T)) {
	for v := range seq {
		f(v)
	}
}

// Some reports whether pred returns true for at least one value of seq.
// It stops iterating as soon as a match is found.
func Some[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether pred returns true for every value of seq. It stops
// iterating as soon as a counterexample is found.
func Every[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Collect2 drains a Seq2 into parallel key/value slices.
func Collect2[K, V any](seq iter.Seq2[K, V]) ([]K, []V) {
	var ks []K
	var vs []V
	for k, v := range seq {
		ks = append(ks, k)
		vs = append(vs, v)
	}
	return ks, vs
}

// ForEach2 calls f once per (key, value) pair of seq.
func ForEach2[K, V any](seq iter.Seq2[K, V], f func(K, V)) {
	for k, v := range seq {
		f(k, v)
	}
}

// Some2 reports whether pred matches at least one pair of seq.
func Some2[K, V any](seq iter.Seq2[K, V], pred func(K, V) bool) bool {
	for k, v := range seq {
		if pred(k, v) {
			return true
		}
	}
	return false
}

// Every2 reports whether pred matches every pair of seq.
func Every2[K, V any](seq iter.Seq2[K, V], pred func(K, V) bool) bool {
	for k, v := range seq {
		if !pred(k, v) {
			return false
		}
	}
	return true
}
