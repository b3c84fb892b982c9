// Package coordmap implements coordinate-keyed maps and sets, per
// spec.md §4.6: an (x, y) pair is stringified with a configurable
// separator ("Joint") and stored in an inner hashmap.HashMap, the same
// layering the teacher pack's tuple package suggests for naming small
// fixed-arity tuples (T2's A0/A1 fields here become a named Point's X/Y).
package coordmap

import (
	"strconv"
	"strings"

	"github.com/rogpeppe/containers/hashmap"
)

// Point is a 2-D integer coordinate.
type Point struct {
	X, Y int
}

// DefaultJoint is the default coordinate-string separator.
const DefaultJoint = "_"

func key(p Point, joint string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.X))
	b.WriteString(joint)
	b.WriteString(strconv.Itoa(p.Y))
	return b.String()
}

// CoordMap maps 2-D coordinates to values of type V.
type CoordMap[V any] struct {
	joint string
	m     *hashmap.HashMap[string, entry[V]]
}

type entry[V any] struct {
	pt  Point
	val V
}

// New returns an empty CoordMap using DefaultJoint as its key separator.
func New[V any]() *CoordMap[V] { return NewWithJoint[V](DefaultJoint) }

// NewWithJoint returns an empty CoordMap using joint as its key
// separator, for callers whose coordinate components might otherwise
// collide under the default separator.
func NewWithJoint[V any](joint string) *CoordMap[V] {
	return &CoordMap[V]{joint: joint, m: hashmap.New[string, entry[V]]()}
}

// Set stores v at p.
func (c *CoordMap[V]) Set(p Point, v V) {
	c.m.Set(key(p, c.joint), entry[V]{pt: p, val: v})
}

// Get returns the value stored at p.
func (c *CoordMap[V]) Get(p Point) (V, bool) {
	e, ok := c.m.Get(key(p, c.joint))
	return e.val, ok
}

// Has reports whether p has a stored value.
func (c *CoordMap[V]) Has(p Point) bool { return c.m.Has(key(p, c.joint)) }

// Delete removes p, reporting whether it was present.
func (c *CoordMap[V]) Delete(p Point) bool { return c.m.Delete(key(p, c.joint)) }

// Len returns the number of stored coordinates.
func (c *CoordMap[V]) Len() int { return c.m.Len() }

// All iterates every (Point, value) pair in unspecified order.
func (c *CoordMap[V]) All() func(yield func(Point, V) bool) {
	return func(yield func(Point, V) bool) {
		for _, e := range c.m.All() {
			if !yield(e.pt, e.val) {
				return
			}
		}
	}
}

// CoordSet is a set of 2-D coordinates, backed by a CoordMap[struct{}].
type CoordSet struct {
	m *CoordMap[struct{}]
}

// NewSet returns an empty CoordSet using DefaultJoint as its key
// separator.
func NewSet() *CoordSet { return &CoordSet{m: New[struct{}]()} }

// NewSetWithJoint returns an empty CoordSet using joint as its key
// separator.
func NewSetWithJoint(joint string) *CoordSet { return &CoordSet{m: NewWithJoint[struct{}](joint)} }

// Add inserts p, reporting whether it was newly added.
func (s *CoordSet) Add(p Point) bool {
	existed := s.m.Has(p)
	s.m.Set(p, struct{}{})
	return !existed
}

// Has reports whether p is a member.
func (s *CoordSet) Has(p Point) bool { return s.m.Has(p) }

// Delete removes p, reporting whether it was present.
func (s *CoordSet) Delete(p Point) bool { return s.m.Delete(p) }

// Len returns the number of members.
func (s *CoordSet) Len() int { return s.m.Len() }

// All iterates every member point in unspecified order.
func (s *CoordSet) All() func(yield func(Point) bool) {
	return func(yield func(Point) bool) {
		for p := range s.m.All() {
			if !yield(p) {
				return
			}
		}
	}
}
