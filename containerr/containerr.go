// Package containerr defines the error kinds shared by every container in
// this module. Containers panic with or return one of these sentinels,
// wrapping it with fmt.Errorf's %w where a value-specific message is
// added, so callers can test a recovered panic value or a returned error
// with errors.Is.
package containerr

import "errors"

// InvalidKeyType is the panic value of the Func-suffixed tree
// constructors (the any-typed entry points that accept a caller-supplied
// comparator) when that comparator is nil.
var InvalidKeyType = errors.New("containerr: key type requires a comparator")

// InvalidKeyValue is wrapped into the panic a tree's Set raises when a key
// fails the default key-validity policy (a NaN float key) on a tree using
// the default comparator.
var InvalidKeyValue = errors.New("containerr: invalid key value")

// InvalidCount is the panic value when a negative count is passed to a
// multiset/counter API.
var InvalidCount = errors.New("containerr: invalid count")

// InvalidMapResult is returned when a Map callback produces a value the
// destination container cannot hold.
var InvalidMapResult = errors.New("containerr: map callback returned an unusable result")

// IndexOutOfRange is returned by data-class (as opposed to programmer-error
// class) bounds failures. Most index faults in this module panic instead,
// matching the teacher package's ring.Buffer convention; this sentinel
// exists for the few call paths that take untrusted indices from bulk
// operations (Deque.Splice, Singly.Splice, Doubly.Splice) where returning an error is
// more useful than panicking mid-batch.
var IndexOutOfRange = errors.New("containerr: index out of range")

// ComparatorRequired is the panic value when heap.New is given a nil less
// function.
var ComparatorRequired = errors.New("containerr: comparator required for this element type")

// CorruptState is wrapped into a panic when an internal invariant the
// public API relies on (red-black linkage, min/max cache coherence) is
// found violated — this should be unreachable; it exists as a guard
// against future bugs rather than a condition callers can trigger.
var CorruptState = errors.New("containerr: internal invariant violated")
