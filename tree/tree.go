// Package tree implements a single ordered-tree engine generalized over
// three balancing strategies (plain BST, AVL, red-black), per spec.md
// §4.1. The node layout, rotation helpers, and the overall shape of Put/
// Delete/Floor/Ceiling/Iter are grounded directly on the AVL
// implementation in the retrieved gods-family tree package; the red-black
// insert/delete fixup cases follow the same family's well-known
// case-numbered algorithm, generalized onto the shared node type.
package tree

import (
	"cmp"
	"fmt"
	"iter"
	"time"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/containers/cmpkey"
	"github.com/rogpeppe/containers/containerr"
)

type balance int

const (
	balanceNone balance = iota // plain BST, no rebalancing
	balanceAVL
	balanceRB
)

// node is the shared node representation for all three balancing
// strategies. bf and height are meaningful only under balanceAVL, kept
// up to date incrementally along the rotation and fixup paths rather
// than recomputed from the subtree on every read; red only under
// balanceRB.
type node[K any, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	parent      *node[K, V]
	bf          int8
	height      int8
	red         bool
}

// Node is a read-only handle onto a tree node, returned by GetNode and
// by a handle's own Left, Right and Parent. It is opaque the way *list.Node is: valid only
// for as long as the tree that produced it is not structurally mutated.
type Node[K any, V any] struct {
	n *node[K, V]
}

// Key returns the node's key.
func (h Node[K, V]) Key() K { return h.n.key }

// Value returns the node's value.
func (h Node[K, V]) Value() V { return h.n.value }

// Left returns the left child, if any.
func (h Node[K, V]) Left() (Node[K, V], bool) {
	if h.n.left == nil {
		return Node[K, V]{}, false
	}
	return Node[K, V]{h.n.left}, true
}

// Right returns the right child, if any.
func (h Node[K, V]) Right() (Node[K, V], bool) {
	if h.n.right == nil {
		return Node[K, V]{}, false
	}
	return Node[K, V]{h.n.right}, true
}

// Parent returns the parent node, if any.
func (h Node[K, V]) Parent() (Node[K, V], bool) {
	if h.n.parent == nil {
		return Node[K, V]{}, false
	}
	return Node[K, V]{h.n.parent}, true
}

// header holds the tree's root along with cached pointers to its
// leftmost and rightmost nodes, per the gods-family trees' header-node
// technique: First/Last/PollFirst/PollLast read min/max directly instead
// of re-walking the spine, and every mutator refreshes the cache rather
// than recomputing it from scratch.
type header[K any, V any] struct {
	root     *node[K, V]
	min, max *node[K, V]
}

// BalancedTree is the unified ordered-tree type: a BST, AVL tree, or
// red-black tree depending on which constructor built it.
type BalancedTree[K any, V any] struct {
	hdr      header[K, V]
	size     int
	cmp      cmpkey.Comparator[K]
	kind     balance
	validate cmpkey.Validator[K]
}

// defaultValidate returns the key-validity check that applies to K's
// default (cmp.Ordered) comparator, or nil if K needs none. float32 and
// float64 are the default-ordered key types with a value (NaN) the
// default comparator cannot totally order. The time.Time case is never
// reached from NewBST, NewAVL or NewRB, since time.Time does not satisfy
// cmp.Ordered.
func defaultValidate[K any]() cmpkey.Validator[K] {
	var zero K
	switch any(zero).(type) {
	case float32:
		return func(v K) (bool, string) { return cmpkey.ValidateFloat(any(v).(float32)) }
	case float64:
		return func(v K) (bool, string) { return cmpkey.ValidateFloat(any(v).(float64)) }
	case time.Time:
		return func(v K) (bool, string) { return cmpkey.ValidateTime(any(v).(time.Time)) }
	default:
		return nil
	}
}

// NewBST returns an unbalanced binary search tree ordered over a
// cmp.Ordered key type.
func NewBST[K cmp.Ordered, V any]() *BalancedTree[K, V] {
	return &BalancedTree[K, V]{cmp: cmpkey.Ordered[K](), kind: balanceNone, validate: defaultValidate[K]()}
}

// NewAVL returns a height-balanced AVL tree ordered over a cmp.Ordered
// key type.
func NewAVL[K cmp.Ordered, V any]() *BalancedTree[K, V] {
	return &BalancedTree[K, V]{cmp: cmpkey.Ordered[K](), kind: balanceAVL, validate: defaultValidate[K]()}
}

// NewRB returns a red-black tree ordered over a cmp.Ordered key type.
func NewRB[K cmp.Ordered, V any]() *BalancedTree[K, V] {
	return &BalancedTree[K, V]{cmp: cmpkey.Ordered[K](), kind: balanceRB, validate: defaultValidate[K]()}
}

// NewBSTFunc, NewAVLFunc and NewRBFunc build the same three tree shapes
// over an arbitrary key type given an explicit comparator, for object
// keys that don't satisfy cmp.Ordered. A nil comparator panics with
// containerr.InvalidKeyType.

func NewBSTFunc[K any, V any](c cmpkey.Comparator[K]) *BalancedTree[K, V] {
	checkCmp(c)
	return &BalancedTree[K, V]{cmp: c, kind: balanceNone}
}

func NewAVLFunc[K any, V any](c cmpkey.Comparator[K]) *BalancedTree[K, V] {
	checkCmp(c)
	return &BalancedTree[K, V]{cmp: c, kind: balanceAVL}
}

func NewRBFunc[K any, V any](c cmpkey.Comparator[K]) *BalancedTree[K, V] {
	checkCmp(c)
	return &BalancedTree[K, V]{cmp: c, kind: balanceRB}
}

func checkCmp[K any](c cmpkey.Comparator[K]) {
	if c == nil {
		panic(containerr.InvalidKeyType)
	}
}

// Len returns the number of entries in the tree.
func (t *BalancedTree[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree has no entries.
func (t *BalancedTree[K, V]) IsEmpty() bool { return t.size == 0 }

// Clear removes every entry.
func (t *BalancedTree[K, V]) Clear() {
	t.hdr = header[K, V]{}
	t.size = 0
}

// Set inserts key/value, or updates value if key is already present. It
// returns the prior value and whether the key already existed. If the
// tree was constructed with its default comparator and key is a NaN
// float, Set panics with containerr.InvalidKeyValue. Trees built with an
// explicit comparator do no key validation.
func (t *BalancedTree[K, V]) Set(key K, value V) (old V, existed bool) {
	if t.validate != nil {
		if ok, reason := t.validate(key); !ok {
			panic(fmt.Errorf("%w: %s", containerr.InvalidKeyValue, reason))
		}
	}
	if t.hdr.root == nil {
		nn := &node[K, V]{key: key, value: value}
		t.hdr.root = nn
		t.hdr.min, t.hdr.max = nn, nn
		t.size++
		return old, false
	}
	n := t.hdr.root
	var parent *node[K, V]
	c := 0
	for n != nil {
		parent = n
		c = t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			old = n.value
			n.value = value
			return old, true
		}
	}
	nn := &node[K, V]{key: key, value: value, parent: parent, red: true}
	if c < 0 {
		parent.left = nn
	} else {
		parent.right = nn
	}
	t.size++
	if t.cmp(nn.key, t.hdr.min.key) < 0 {
		t.hdr.min = nn
	}
	if t.cmp(nn.key, t.hdr.max.key) > 0 {
		t.hdr.max = nn
	}
	switch t.kind {
	case balanceAVL:
		t.avlInsertFixup(parent)
	case balanceRB:
		t.rbInsertFixup(nn)
	}
	return old, false
}

// Get returns the value stored at key.
func (t *BalancedTree[K, V]) Get(key K) (V, bool) {
	if n := t.lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (t *BalancedTree[K, V]) Has(key K) bool { return t.lookup(key) != nil }

// GetNode returns a read-only handle to the node storing key.
func (t *BalancedTree[K, V]) GetNode(key K) (Node[K, V], bool) {
	if n := t.lookup(key); n != nil {
		return Node[K, V]{n}, true
	}
	return Node[K, V]{}, false
}

func (t *BalancedTree[K, V]) lookup(key K) *node[K, V] {
	n := t.hdr.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Delete removes key, reporting whether it was present.
func (t *BalancedTree[K, V]) Delete(key K) bool {
	n := t.lookup(key)
	if n == nil {
		return false
	}
	t.deleteNode(n)
	t.size--
	return true
}

// deleteNode removes n. In the two-children case the node actually
// unlinked is n's in-order predecessor, whose key/value is first copied
// into n; that predecessor can be the cached minimum, so the cached
// header bounds are compared against the unlinked node after the swap.
func (t *BalancedTree[K, V]) deleteNode(n *node[K, V]) {
	var wasMin, wasMax bool
	defer func() {
		if t.hdr.root == nil {
			t.hdr.min, t.hdr.max = nil, nil
			return
		}
		if wasMin {
			t.hdr.min = leftmost(t.hdr.root)
		}
		if wasMax {
			t.hdr.max = rightmost(t.hdr.root)
		}
	}()
	if n.left != nil && n.right != nil {
		pred := n.left
		for pred.right != nil {
			pred = pred.right
		}
		n.key, n.value = pred.key, pred.value
		n = pred
	}
	wasMin = n == t.hdr.min
	wasMax = n == t.hdr.max
	var child *node[K, V]
	if n.left != nil {
		child = n.left
	} else {
		child = n.right
	}

	switch t.kind {
	case balanceAVL:
		fixStart := n.parent
		t.replaceNode(n, child)
		if fixStart != nil {
			t.avlDeleteFixup(fixStart)
		}
	case balanceRB:
		if !n.red {
			if nodeIsRed(child) {
				child.red = false
			} else {
				t.rbDeleteCase1(n)
			}
		}
		t.replaceNode(n, child)
		if n.parent == nil && child != nil {
			child.red = false
		}
	default:
		t.replaceNode(n, child)
	}
}

func (t *BalancedTree[K, V]) replaceNode(old, nw *node[K, V]) {
	if old.parent == nil {
		t.hdr.root = nw
	} else if old == old.parent.left {
		old.parent.left = nw
	} else {
		old.parent.right = nw
	}
	if nw != nil {
		nw.parent = old.parent
	}
}

func (t *BalancedTree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	t.replaceNode(x, y)
	x.right = y.left
	if x.right != nil {
		x.right.parent = x
	}
	y.left = x
	x.parent = y
	if t.kind == balanceAVL {
		t.updateBF(x)
		t.updateBF(y)
	}
}

func (t *BalancedTree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	t.replaceNode(x, y)
	x.left = y.right
	if x.left != nil {
		x.left.parent = x
	}
	y.right = x
	x.parent = y
	if t.kind == balanceAVL {
		t.updateBF(x)
		t.updateBF(y)
	}
}

// --- AVL balancing ---

// height is a full, uncached recomputation of n's subtree height, used
// only as the generic Height() fallback for BST/red-black trees, which
// don't carry a maintained height cache.
func (t *BalancedTree[K, V]) height(n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

func cachedHeight[K any, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return int(n.height)
}

// updateBF refreshes n's balance factor and cached height from its
// children's already-correct cached heights, in O(1): every avlInsertFixup/
// avlDeleteFixup walk and every rotation calls this bottom-up, so the
// children's height fields are always current by the time their parent
// is refreshed.
func (t *BalancedTree[K, V]) updateBF(n *node[K, V]) {
	if n == nil {
		return
	}
	lh, rh := cachedHeight(n.left), cachedHeight(n.right)
	n.height = int8(1 + max(lh, rh))
	n.bf = int8(rh - lh)
}

func (t *BalancedTree[K, V]) avlInsertFixup(n *node[K, V]) {
	for n != nil {
		t.updateBF(n)
		bf := n.bf
		if bf < -1 || bf > 1 {
			t.avlRebalance(n)
			break
		}
		if bf == 0 {
			break
		}
		n = n.parent
	}
}

func (t *BalancedTree[K, V]) avlDeleteFixup(n *node[K, V]) {
	for n != nil {
		t.updateBF(n)
		bf := n.bf
		if bf < -1 || bf > 1 {
			t.avlRebalance(n)
			n = n.parent
		}
		if n.bf != 0 {
			break
		}
		n = n.parent
	}
}

func (t *BalancedTree[K, V]) avlRebalance(n *node[K, V]) {
	if n.bf < -1 {
		if n.left.bf > 0 {
			t.rotateLeft(n.left)
		}
		t.rotateRight(n)
	} else {
		if n.right.bf < 0 {
			t.rotateRight(n.right)
		}
		t.rotateLeft(n)
	}
}

// --- Red-black balancing ---

func nodeIsRed[K any, V any](n *node[K, V]) bool { return n != nil && n.red }

func grandparent[K any, V any](n *node[K, V]) *node[K, V] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

func uncle[K any, V any](n *node[K, V]) *node[K, V] {
	g := grandparent(n)
	if g == nil {
		return nil
	}
	if n.parent == g.left {
		return g.right
	}
	return g.left
}

// sibling returns n's sibling under n.parent. The delete-fixup case chain
// only ever calls this with n still linked under its original parent; if
// neither child pointer matches n, the red-black linkage has been
// corrupted by a bug elsewhere in the engine, so this wraps the failure
// with xerrors for a frame-annotated panic rather than silently returning
// the wrong sibling.
func sibling[K any, V any](n *node[K, V]) *node[K, V] {
	switch n.parent.left {
	case n:
		return n.parent.right
	}
	if n.parent.right != n {
		panic(xerrors.Errorf("tree: node is not a child of its parent: %w", containerr.CorruptState))
	}
	return n.parent.left
}

func (t *BalancedTree[K, V]) rbInsertFixup(n *node[K, V]) {
	if n.parent == nil {
		n.red = false
		return
	}
	if !nodeIsRed(n.parent) {
		return
	}
	u := uncle(n)
	if nodeIsRed(u) {
		n.parent.red = false
		u.red = false
		grandparent(n).red = true
		t.rbInsertFixup(grandparent(n))
		return
	}
	g := grandparent(n)
	if n == n.parent.right && n.parent == g.left {
		t.rotateLeft(n.parent)
		n = n.left
	} else if n == n.parent.left && n.parent == g.right {
		t.rotateRight(n.parent)
		n = n.right
	}
	n.parent.red = false
	g = grandparent(n)
	g.red = true
	if n == n.parent.left && n.parent == g.left {
		t.rotateRight(g)
	} else if n == n.parent.right && n.parent == g.right {
		t.rotateLeft(g)
	}
}

// rbDeleteCase1..6 fix up the "double black" deficiency at n, which is
// still linked into the tree (its eventual replaceNode has not yet run),
// following the classic case-numbered red-black deletion algorithm.

func (t *BalancedTree[K, V]) rbDeleteCase1(n *node[K, V]) {
	if n.parent == nil {
		return
	}
	t.rbDeleteCase2(n)
}

func (t *BalancedTree[K, V]) rbDeleteCase2(n *node[K, V]) {
	s := sibling(n)
	if nodeIsRed(s) {
		n.parent.red = true
		s.red = false
		if n == n.parent.left {
			t.rotateLeft(n.parent)
		} else {
			t.rotateRight(n.parent)
		}
	}
	t.rbDeleteCase3(n)
}

func (t *BalancedTree[K, V]) rbDeleteCase3(n *node[K, V]) {
	s := sibling(n)
	if !nodeIsRed(n.parent) && !nodeIsRed(s) && !nodeIsRed(s.left) && !nodeIsRed(s.right) {
		s.red = true
		t.rbDeleteCase1(n.parent)
		return
	}
	t.rbDeleteCase4(n)
}

func (t *BalancedTree[K, V]) rbDeleteCase4(n *node[K, V]) {
	s := sibling(n)
	if nodeIsRed(n.parent) && !nodeIsRed(s) && !nodeIsRed(s.left) && !nodeIsRed(s.right) {
		s.red = true
		n.parent.red = false
		return
	}
	t.rbDeleteCase5(n)
}

func (t *BalancedTree[K, V]) rbDeleteCase5(n *node[K, V]) {
	s := sibling(n)
	if n == n.parent.left && !nodeIsRed(s) && nodeIsRed(s.left) && !nodeIsRed(s.right) {
		s.red = true
		s.left.red = false
		t.rotateRight(s)
	} else if n == n.parent.right && !nodeIsRed(s) && nodeIsRed(s.right) && !nodeIsRed(s.left) {
		s.red = true
		s.right.red = false
		t.rotateLeft(s)
	}
	t.rbDeleteCase6(n)
}

func (t *BalancedTree[K, V]) rbDeleteCase6(n *node[K, V]) {
	s := sibling(n)
	s.red = nodeIsRed(n.parent)
	n.parent.red = false
	if n == n.parent.left && nodeIsRed(s.right) {
		s.right.red = false
		t.rotateLeft(n.parent)
	} else if nodeIsRed(s.left) {
		s.left.red = false
		t.rotateRight(n.parent)
	}
}

// --- Order-statistics / navigation ---

func leftmost[K any, V any](n *node[K, V]) *node[K, V] {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K any, V any](n *node[K, V]) *node[K, V] {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}

// First returns the smallest key/value pair.
func (t *BalancedTree[K, V]) First() (k K, v V, ok bool) {
	if t.hdr.min == nil {
		return k, v, false
	}
	return t.hdr.min.key, t.hdr.min.value, true
}

// Last returns the largest key/value pair.
func (t *BalancedTree[K, V]) Last() (k K, v V, ok bool) {
	if t.hdr.max == nil {
		return k, v, false
	}
	return t.hdr.max.key, t.hdr.max.value, true
}

// PollFirst removes and returns the smallest key/value pair.
func (t *BalancedTree[K, V]) PollFirst() (k K, v V, ok bool) {
	n := t.hdr.min
	if n == nil {
		return k, v, false
	}
	k, v = n.key, n.value
	t.deleteNode(n)
	t.size--
	return k, v, true
}

// PollLast removes and returns the largest key/value pair.
func (t *BalancedTree[K, V]) PollLast() (k K, v V, ok bool) {
	n := t.hdr.max
	if n == nil {
		return k, v, false
	}
	k, v = n.key, n.value
	t.deleteNode(n)
	t.size--
	return k, v, true
}

// Floor finds the largest key <= key.
func (t *BalancedTree[K, V]) Floor(key K) (k K, v V, ok bool) {
	var res *node[K, V]
	n := t.hdr.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			return n.key, n.value, true
		case c > 0:
			res = n
			n = n.right
		default:
			n = n.left
		}
	}
	if res == nil {
		return k, v, false
	}
	return res.key, res.value, true
}

// Ceiling finds the smallest key >= key.
func (t *BalancedTree[K, V]) Ceiling(key K) (k K, v V, ok bool) {
	var res *node[K, V]
	n := t.hdr.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			return n.key, n.value, true
		case c < 0:
			res = n
			n = n.left
		default:
			n = n.right
		}
	}
	if res == nil {
		return k, v, false
	}
	return res.key, res.value, true
}

// Lower finds the largest key strictly less than key.
func (t *BalancedTree[K, V]) Lower(key K) (k K, v V, ok bool) {
	var res *node[K, V]
	n := t.hdr.root
	for n != nil {
		if t.cmp(key, n.key) > 0 {
			res = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if res == nil {
		return k, v, false
	}
	return res.key, res.value, true
}

// Higher finds the smallest key strictly greater than key.
func (t *BalancedTree[K, V]) Higher(key K) (k K, v V, ok bool) {
	var res *node[K, V]
	n := t.hdr.root
	for n != nil {
		if t.cmp(key, n.key) < 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if res == nil {
		return k, v, false
	}
	return res.key, res.value, true
}

// Depth reports the number of edges from the root to key.
func (t *BalancedTree[K, V]) Depth(key K) (int, bool) {
	n := t.hdr.root
	d := 0
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			return d, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
		d++
	}
	return 0, false
}

// Height returns the height of the tree (-1 for an empty tree).
func (t *BalancedTree[K, V]) Height() int {
	if t.kind == balanceAVL {
		return cachedHeight(t.hdr.root)
	}
	return t.height(t.hdr.root)
}

// --- Traversals ---

// All returns an in-order iterator over every key/value pair, walking
// via parent pointers the way the gods-family tree's Iter does.
func (t *BalancedTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		n := leftmost(t.hdr.root)
		for n != nil {
			if !yield(n.key, n.value) {
				return
			}
			if n.right != nil {
				n = leftmost(n.right)
			} else {
				for n.parent != nil && n == n.parent.right {
					n = n.parent
				}
				n = n.parent
			}
		}
	}
}

// Reverse returns a reverse in-order (largest-to-smallest) iterator.
func (t *BalancedTree[K, V]) Reverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		n := rightmost(t.hdr.root)
		for n != nil {
			if !yield(n.key, n.value) {
				return
			}
			if n.left != nil {
				n = rightmost(n.left)
			} else {
				for n.parent != nil && n == n.parent.left {
					n = n.parent
				}
				n = n.parent
			}
		}
	}
}

// Morris performs a classic Morris in-order traversal: it temporarily
// threads right pointers from predecessors back to their successor
// before restoring them, achieving O(1) auxiliary space instead of the
// parent-pointer walk All uses. If the caller stops early, the walk
// still runs to the end without yielding, so every thread is removed.
func (t *BalancedTree[K, V]) Morris() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		cur := t.hdr.root
		stopped := false
		for cur != nil {
			if cur.left == nil {
				if !stopped && !yield(cur.key, cur.value) {
					stopped = true
				}
				cur = cur.right
				continue
			}
			pred := cur.left
			for pred.right != nil && pred.right != cur {
				pred = pred.right
			}
			if pred.right == nil {
				pred.right = cur
				cur = cur.left
			} else {
				pred.right = nil
				if !stopped && !yield(cur.key, cur.value) {
					stopped = true
				}
				cur = cur.right
			}
		}
	}
}

// RangeSearch returns an in-order iterator over the keys in [lo, hi].
func (t *BalancedTree[K, V]) RangeSearch(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if t.cmp(lo, n.key) < 0 {
				if !walk(n.left) {
					return false
				}
			}
			if t.cmp(lo, n.key) <= 0 && t.cmp(hi, n.key) >= 0 {
				if !yield(n.key, n.value) {
					return false
				}
			}
			if t.cmp(hi, n.key) > 0 {
				if !walk(n.right) {
					return false
				}
			}
			return true
		}
		walk(t.hdr.root)
	}
}

// PreOrder returns a root/left/right iterator.
func (t *BalancedTree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if !yield(n.key, n.value) {
				return false
			}
			return walk(n.left) && walk(n.right)
		}
		walk(t.hdr.root)
	}
}

// PostOrder returns a left/right/root iterator.
func (t *BalancedTree[K, V]) PostOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if !walk(n.left) || !walk(n.right) {
				return false
			}
			return yield(n.key, n.value)
		}
		walk(t.hdr.root)
	}
}

// BFS returns a level-order iterator.
func (t *BalancedTree[K, V]) BFS() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.hdr.root == nil {
			return
		}
		q := []*node[K, V]{t.hdr.root}
		for len(q) > 0 {
			n := q[0]
			q = q[1:]
			if !yield(n.key, n.value) {
				return
			}
			if n.left != nil {
				q = append(q, n.left)
			}
			if n.right != nil {
				q = append(q, n.right)
			}
		}
	}
}

// ListLevels returns the tree's keys grouped by depth, root first.
func (t *BalancedTree[K, V]) ListLevels() [][]K {
	if t.hdr.root == nil {
		return nil
	}
	var levels [][]K
	cur := []*node[K, V]{t.hdr.root}
	for len(cur) > 0 {
		row := make([]K, len(cur))
		var next []*node[K, V]
		for i, n := range cur {
			row[i] = n.key
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, row)
		cur = next
	}
	return levels
}

// Leaves returns the keys of every childless node, in-order.
func (t *BalancedTree[K, V]) Leaves() []K {
	var out []K
	for k, _ := range t.All() {
		if n := t.lookup(k); n.left == nil && n.right == nil {
			out = append(out, k)
		}
	}
	return out
}

// IsBST reports whether the tree's keys are in strict increasing order,
// i.e. the binary-search-tree property actually holds.
func (t *BalancedTree[K, V]) IsBST() bool {
	first := true
	var prev K
	for k := range t.All() {
		if !first && t.cmp(prev, k) >= 0 {
			return false
		}
		prev = k
		first = false
	}
	return true
}

// IsAVLBalanced reports whether every node's subtree heights differ by
// at most one, independent of which balancing strategy built the tree.
func (t *BalancedTree[K, V]) IsAVLBalanced() bool {
	ok := true
	var check func(n *node[K, V]) int
	check = func(n *node[K, V]) int {
		if n == nil || !ok {
			return -1
		}
		lh := check(n.left)
		rh := check(n.right)
		d := lh - rh
		if d < -1 || d > 1 {
			ok = false
		}
		return 1 + max(lh, rh)
	}
	check(t.hdr.root)
	return ok
}

// Filter returns a new tree of the same kind holding only the entries
// for which pred returns true.
func (t *BalancedTree[K, V]) Filter(pred func(K, V) bool) *BalancedTree[K, V] {
	out := &BalancedTree[K, V]{cmp: t.cmp, kind: t.kind, validate: t.validate}
	for k, v := range t.All() {
		if pred(k, v) {
			out.Set(k, v)
		}
	}
	return out
}

// Map returns a new tree of the same kind and comparator, built by
// applying f to every entry. Because Go cannot express a same-method
// different-key-type transform on a single receiver, a cross-type
// mapping is simply a fresh tree built from iterating All and calling
// Set with the transformed key/value.
func (t *BalancedTree[K, V]) Map(f func(K, V) (K, V)) *BalancedTree[K, V] {
	out := &BalancedTree[K, V]{cmp: t.cmp, kind: t.kind, validate: t.validate}
	for k, v := range t.All() {
		nk, nv := f(k, v)
		out.Set(nk, nv)
	}
	return out
}

// Clone returns a structurally independent deep copy.
func (t *BalancedTree[K, V]) Clone() *BalancedTree[K, V] {
	out := &BalancedTree[K, V]{cmp: t.cmp, kind: t.kind, size: t.size, validate: t.validate}
	out.hdr.root = cloneNode(t.hdr.root, nil)
	out.hdr.min = leftmost(out.hdr.root)
	out.hdr.max = rightmost(out.hdr.root)
	return out
}

func cloneNode[K any, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{key: n.key, value: n.value, bf: n.bf, height: n.height, red: n.red, parent: parent}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)
	return c
}

// LoadYAML builds a red-black tree of string keys from a YAML mapping
// document, per spec.md §4.6's bulk-loading requirement.
func LoadYAML[V any](data []byte) (*BalancedTree[string, V], error) {
	raw := map[string]V{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tree: LoadYAML: %w", err)
	}
	t := NewRB[string, V]()
	for k, v := range raw {
		t.Set(k, v)
	}
	return t, nil
}
