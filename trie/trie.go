// Package trie implements a prefix tree over strings, per spec.md §4.9:
// word membership, prefix queries, longest-common-prefix, and bulk
// transforms, grounded on the teacher pack's shared node-handle and
// functional-options idiom (spec.md §4.9, §6) rather than on any single
// teacher file — the teacher carries no trie of its own.
package trie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kr/pretty"
)

// Node is a trie node. No exported function or method returns one; it is
// used only inside the package.
type Node struct {
	children map[rune]*Node
	terminal bool
}

func newNode() *Node { return &Node{children: make(map[rune]*Node)} }

// Trie is a prefix tree of words.
type Trie struct {
	root          *Node
	size          int
	caseSensitive bool
}

// Option configures a Trie at construction time.
type Option func(*Trie)

// CaseInsensitive folds every inserted and queried word to lower case.
func CaseInsensitive() Option {
	return func(t *Trie) { t.caseSensitive = false }
}

// New returns an empty, case-sensitive Trie.
func New(opts ...Option) *Trie {
	t := &Trie{root: newNode(), caseSensitive: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Trie) normalize(word string) string {
	if t.caseSensitive {
		return word
	}
	return strings.ToLower(word)
}

// Add inserts word, reporting whether it was newly added.
func (t *Trie) Add(word string) bool {
	word = t.normalize(word)
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	t.size++
	return true
}

// AddMany inserts every word in words, returning the count newly added.
func (t *Trie) AddMany(words []string) int {
	added := 0
	for _, w := range words {
		if t.Add(w) {
			added++
		}
	}
	return added
}

// walk returns the node reached by following word from the root, or nil
// if no such path exists.
func (t *Trie) walk(word string) *Node {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Has reports whether word was added as a complete entry.
func (t *Trie) Has(word string) bool {
	n := t.walk(t.normalize(word))
	return n != nil && n.terminal
}

// HasPrefix reports whether any entry starts with prefix (prefix itself
// may or may not be a complete entry).
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(t.normalize(prefix)) != nil
}

// HasPurePrefix reports whether prefix is a strict prefix of some longer
// entry, and is not itself a complete entry.
func (t *Trie) HasPurePrefix(prefix string) bool {
	n := t.walk(t.normalize(prefix))
	return n != nil && !n.terminal && len(n.children) > 0
}

// HasCommonPrefix reports whether prefix is exactly the longest prefix
// shared by every stored word, as returned by LongestCommonPrefix.
func (t *Trie) HasCommonPrefix(prefix string) bool {
	return t.LongestCommonPrefix() == t.normalize(prefix)
}

// LongestCommonPrefix returns the longest prefix shared by every word
// currently stored in the trie.
func (t *Trie) LongestCommonPrefix() string {
	var b strings.Builder
	n := t.root
	for !n.terminal && len(n.children) == 1 {
		for r, child := range n.children {
			b.WriteRune(r)
			n = child
		}
	}
	return b.String()
}

// Words returns every stored entry in lexicographic order.
func (t *Trie) Words() []string {
	var out []string
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		if n.terminal {
			out = append(out, prefix)
		}
		runes := make([]rune, 0, len(n.children))
		for r := range n.children {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		for _, r := range runes {
			walk(n.children[r], prefix+string(r))
		}
	}
	walk(t.root, "")
	return out
}

// Delete removes word, reporting whether it was present. Interior nodes
// left with no terminal descendants are pruned.
func (t *Trie) Delete(word string) bool {
	word = t.normalize(word)
	if !t.Has(word) {
		return false
	}
	t.deleteAt(t.root, []rune(word), 0)
	t.size--
	return true
}

// deleteAt clears the terminal mark on the node reached by path[depth:]
// and prunes now-dead interior nodes on the way back up, reporting
// whether n itself should be pruned by its caller.
func (t *Trie) deleteAt(n *Node, path []rune, depth int) (prune bool) {
	if depth == len(path) {
		n.terminal = false
		return len(n.children) == 0
	}
	r := path[depth]
	child := n.children[r]
	if t.deleteAt(child, path, depth+1) {
		delete(n.children, r)
	}
	return !n.terminal && len(n.children) == 0
}

// Height returns the length of the longest word stored in the trie.
func (t *Trie) Height() int {
	var maxDepth func(n *Node) int
	maxDepth = func(n *Node) int {
		best := 0
		for _, child := range n.children {
			if d := 1 + maxDepth(child); d > best {
				best = d
			}
		}
		return best
	}
	return maxDepth(t.root)
}

// Len returns the number of stored entries.
func (t *Trie) Len() int { return t.size }

// IsEmpty reports whether the trie holds no entries.
func (t *Trie) IsEmpty() bool { return t.size == 0 }

// Clone returns a deep copy of t.
func (t *Trie) Clone() *Trie {
	c := New()
	c.caseSensitive = t.caseSensitive
	c.root = cloneNode(t.root)
	c.size = t.size
	return c
}

func cloneNode(n *Node) *Node {
	c := newNode()
	c.terminal = n.terminal
	for r, child := range n.children {
		c.children[r] = cloneNode(child)
	}
	return c
}

// Filter returns a new Trie containing only the entries for which keep
// returns true.
func (t *Trie) Filter(keep func(word string) bool) *Trie {
	out := New()
	out.caseSensitive = t.caseSensitive
	for _, w := range t.Words() {
		if keep(w) {
			out.Add(w)
		}
	}
	return out
}

// Map transforms every entry with f, collecting the results into a new
// Trie (duplicate results collapse, as with any set-like container).
func (t *Trie) Map(f func(word string) string) *Trie {
	out := New()
	out.caseSensitive = t.caseSensitive
	for _, w := range t.Words() {
		out.Add(f(w))
	}
	return out
}

// MapSame applies f in place, rebuilding the trie from the transformed
// words; panics if f ever produces the empty string, which cannot
// occupy a distinct node from the root.
func (t *Trie) MapSame(f func(word string) string) {
	words := t.Words()
	t.root = newNode()
	t.size = 0
	for _, w := range words {
		nw := f(w)
		if nw == "" {
			panic("trie: MapSame produced an empty word")
		}
		t.Add(nw)
	}
}

// String renders a compact, deterministic dump of the trie's word set,
// used for debugging and test failure messages.
func (t *Trie) String() string {
	return fmt.Sprintf("trie(%d words): %s", t.size, pretty.Sprint(t.Words()))
}
