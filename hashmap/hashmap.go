// Package hashmap implements a chained hash map over power-of-two bucket
// capacity, per spec.md §4.6. The hashing approach — hash/maphash seeded
// per map, hashing via maphash.WriteComparable — is grounded on the
// teacher's anyhash.Map; unlike anyhash.Map (which stores its bucket
// table in a plain Go map and never resizes), this keeps its own bucket
// slice and grows it once the load factor is exceeded, since spec.md
// requires resize.
package hashmap

import (
	"fmt"
	"hash/maphash"
	"iter"

	"gopkg.in/yaml.v3"
)

const (
	defaultCapacity = 16
	loadFactor      = 0.75
)

type entry[K comparable, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// HashMap is a chained hash map over comparable keys.
type HashMap[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    int
	seed    maphash.Seed
}

// New returns an empty HashMap with the default initial capacity.
func New[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets: make([]*entry[K, V], defaultCapacity),
		seed:    maphash.MakeSeed(),
	}
}

// Len returns the number of entries.
func (m *HashMap[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *HashMap[K, V]) IsEmpty() bool { return m.size == 0 }

func (m *HashMap[K, V]) hash(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	maphash.WriteComparable(&h, k)
	return h.Sum64()
}

func (m *HashMap[K, V]) bucketIndex(h uint64) int {
	return int(h & uint64(len(m.buckets)-1))
}

func (m *HashMap[K, V]) find(k K) (*entry[K, V], int) {
	idx := m.bucketIndex(m.hash(k))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == k {
			return e, idx
		}
	}
	return nil, idx
}

// Get returns the value for k.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	if e, _ := m.find(k); e != nil {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (m *HashMap[K, V]) Has(k K) bool {
	e, _ := m.find(k)
	return e != nil
}

// Set stores v for k, returning the previous value and whether k already
// existed.
func (m *HashMap[K, V]) Set(k K, v V) (old V, existed bool) {
	if e, idx := m.find(k); e != nil {
		old = e.val
		e.val = v
		return old, true
	} else {
		e2 := &entry[K, V]{key: k, val: v, next: m.buckets[idx]}
		m.buckets[idx] = e2
		m.size++
		m.maybeGrow()
		return old, false
	}
}

// Delete removes k, reporting whether it was present.
func (m *HashMap[K, V]) Delete(k K) bool {
	idx := m.bucketIndex(m.hash(k))
	var prev *entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == k {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return true
		}
		prev = e
	}
	return false
}

// Clear removes every entry, keeping the current capacity.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

func (m *HashMap[K, V]) maybeGrow() {
	if float64(m.size) <= loadFactor*float64(len(m.buckets)) {
		return
	}
	old := m.buckets
	m.buckets = make([]*entry[K, V], len(old)*2)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := m.bucketIndex(m.hash(e.key))
			e.next = m.buckets[idx]
			m.buckets[idx] = e
			e = next
		}
	}
}

// All returns an iterator over (key, value) pairs in unspecified order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over keys in unspecified order.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in unspecified order.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	out := &HashMap[K, V]{buckets: make([]*entry[K, V], len(m.buckets)), seed: m.seed}
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// LoadYAML builds a HashMap of string keys from a YAML mapping document,
// the chained-hash counterpart to tree.LoadYAML.
func LoadYAML[V any](data []byte) (*HashMap[string, V], error) {
	raw := map[string]V{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("hashmap: LoadYAML: %w", err)
	}
	m := New[string, V]()
	for k, v := range raw {
		m.Set(k, v)
	}
	return m, nil
}
