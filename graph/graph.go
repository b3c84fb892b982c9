// Package graph implements directed and undirected graphs over a
// hashmap.HashMap adjacency index, per spec.md §4.9: weighted Dijkstra
// shortest path, topological sort with cycle reporting, and depth- and
// breadth-first traversal, generalizing the teacher's unit-distance
// ShortestPath and Vanadium-derived TopoSort onto a shared adjacency
// representation instead of a caller-supplied Graph interface.
package graph

import (
	"iter"

	"github.com/rogpeppe/containers/heap"
	"github.com/rogpeppe/containers/hashmap"
)

// Edge describes one outgoing arc to To, weighing Weight.
type Edge[Node comparable] struct {
	To     Node
	Weight float64
}

// Directed is an adjacency-map directed graph whose nodes are of type
// Node and whose edges carry a float64 weight.
type Directed[Node comparable] struct {
	adj   *hashmap.HashMap[Node, []Edge[Node]]
	order []Node
}

// NewDirected returns an empty directed graph.
func NewDirected[Node comparable]() *Directed[Node] {
	return &Directed[Node]{adj: hashmap.New[Node, []Edge[Node]]()}
}

// AddVertex registers n with no edges, if not already present.
func (g *Directed[Node]) AddVertex(n Node) {
	if !g.adj.Has(n) {
		g.adj.Set(n, nil)
		g.order = append(g.order, n)
	}
}

// DeleteVertex removes n and every edge incident to it, reporting
// whether it was present.
func (g *Directed[Node]) DeleteVertex(n Node) bool {
	if !g.adj.Has(n) {
		return false
	}
	g.adj.Delete(n)
	for i, v := range g.order {
		if v == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for _, other := range g.order {
		edges, _ := g.adj.Get(other)
		filtered := edges[:0]
		for _, e := range edges {
			if e.To != n {
				filtered = append(filtered, e)
			}
		}
		g.adj.Set(other, filtered)
	}
	return true
}

// AddEdge adds a weighted arc from -> to, registering both endpoints as
// vertices if they are new.
func (g *Directed[Node]) AddEdge(from, to Node, weight float64) {
	g.AddVertex(from)
	g.AddVertex(to)
	edges, _ := g.adj.Get(from)
	g.adj.Set(from, append(edges, Edge[Node]{To: to, Weight: weight}))
}

// DeleteEdge removes the arc from -> to, reporting whether it existed.
func (g *Directed[Node]) DeleteEdge(from, to Node) bool {
	edges, ok := g.adj.Get(from)
	if !ok {
		return false
	}
	for i, e := range edges {
		if e.To == to {
			g.adj.Set(from, append(edges[:i], edges[i+1:]...))
			return true
		}
	}
	return false
}

// HasEdge reports whether an arc from -> to exists.
func (g *Directed[Node]) HasEdge(from, to Node) bool {
	for _, e := range g.EdgesFrom(from) {
		if e.To == to {
			return true
		}
	}
	return false
}

// HasVertex reports whether n has been registered.
func (g *Directed[Node]) HasVertex(n Node) bool { return g.adj.Has(n) }

// EdgesFrom returns the outgoing edges of n.
func (g *Directed[Node]) EdgesFrom(n Node) []Edge[Node] {
	edges, _ := g.adj.Get(n)
	return edges
}

// Neighbors returns the vertices reachable via a single outgoing edge
// from n.
func (g *Directed[Node]) Neighbors(n Node) []Node {
	edges := g.EdgesFrom(n)
	out := make([]Node, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

// AllNodes iterates every registered node in insertion order.
func (g *Directed[Node]) AllNodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// VertexCount returns the number of registered vertices.
func (g *Directed[Node]) VertexCount() int { return g.adj.Len() }

// Undirected is an adjacency-map undirected graph: AddEdge links both
// endpoints symmetrically.
type Undirected[Node comparable] struct {
	d *Directed[Node]
}

// NewUndirected returns an empty undirected graph.
func NewUndirected[Node comparable]() *Undirected[Node] {
	return &Undirected[Node]{d: NewDirected[Node]()}
}

// AddVertex registers n, if not already present.
func (g *Undirected[Node]) AddVertex(n Node) { g.d.AddVertex(n) }

// DeleteVertex removes n and every edge incident to it, reporting
// whether it was present.
func (g *Undirected[Node]) DeleteVertex(n Node) bool { return g.d.DeleteVertex(n) }

// AddEdge links from and to with a symmetric weighted edge.
func (g *Undirected[Node]) AddEdge(from, to Node, weight float64) {
	g.d.AddEdge(from, to, weight)
	g.d.AddEdge(to, from, weight)
}

// DeleteEdge removes the link between from and to, reporting whether it
// existed.
func (g *Undirected[Node]) DeleteEdge(from, to Node) bool {
	a := g.d.DeleteEdge(from, to)
	b := g.d.DeleteEdge(to, from)
	return a || b
}

// HasEdge reports whether from and to are linked.
func (g *Undirected[Node]) HasEdge(from, to Node) bool { return g.d.HasEdge(from, to) }

// HasVertex reports whether n has been registered.
func (g *Undirected[Node]) HasVertex(n Node) bool { return g.d.HasVertex(n) }

// EdgesFrom returns the edges incident to n.
func (g *Undirected[Node]) EdgesFrom(n Node) []Edge[Node] { return g.d.EdgesFrom(n) }

// Neighbors returns the vertices linked to n.
func (g *Undirected[Node]) Neighbors(n Node) []Node { return g.d.Neighbors(n) }

// AllNodes iterates every registered vertex in insertion order.
func (g *Undirected[Node]) AllNodes() iter.Seq[Node] { return g.d.AllNodes() }

// VertexCount returns the number of registered vertices.
func (g *Undirected[Node]) VertexCount() int { return g.d.VertexCount() }

// adjacency is the shared view Dijkstra, TopologicalSort, DFS and BFS
// operate over; both Directed and Undirected satisfy it.
type adjacency[Node comparable] interface {
	AllNodes() iter.Seq[Node]
	EdgesFrom(Node) []Edge[Node]
}

// fringeItem is a node waiting in Dijkstra's priority-queue fringe,
// generalizing the teacher's unit-distance item[Node,Edge] to carry a
// float64 distance and a predecessor instead of an incoming edge value.
type fringeItem[Node any] struct {
	n     Node
	dist  float64
	index int
	from  Node
	has   bool
}

// Dijkstra returns the least-weight path from -> to (inclusive of both
// endpoints) together with its total distance. ok is false if to is
// unreachable from from. Edge weights must be non-negative.
func Dijkstra[Node comparable](g adjacency[Node], from, to Node) (path []Node, dist float64, ok bool) {
	start := &fringeItem[Node]{n: from, dist: 0}
	h := heap.New([]*fringeItem[Node]{start}, func(a, b *fringeItem[Node]) bool {
		return a.dist < b.dist
	}, func(it **fringeItem[Node], i int) {
		(*it).index = i
	})
	best := make(map[Node]*fringeItem[Node])
	best[from] = start
	var found *fringeItem[Node]
	for len(h.Items) > 0 {
		cur := h.Pop()
		if cur.n == to {
			found = cur
			break
		}
		for _, e := range g.EdgesFrom(cur.n) {
			nd := cur.dist + e.Weight
			if it, ok := best[e.To]; !ok {
				it = &fringeItem[Node]{n: e.To, dist: nd, from: cur.n, has: true}
				best[e.To] = it
				h.Push(it)
			} else if nd < it.dist {
				it.dist = nd
				it.from = cur.n
				it.has = true
				h.Fix(it.index)
			}
		}
	}
	if found == nil {
		return nil, 0, false
	}
	dist = found.dist
	for n := found; ; {
		path = append(path, n.n)
		if n.n == from {
			break
		}
		n = best[n.from]
	}
	// reverse into from->to order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist, true
}

// TopologicalSort returns the nodes of g in DFS post-order, so that every
// edge points from a later node to an earlier one (each node appears after
// all of its successors), together with any cycles
// discovered along the way. Each cycle is reported as a node sequence
// starting and ending on the same node, per the teacher's TopoSort
// DumpCycles convention.
func TopologicalSort[Node comparable](g adjacency[Node]) (sorted []Node, cycles [][]Node) {
	v := &visitor[Node]{
		g:    g,
		done: make(map[Node]bool),
	}
	for n := range g.AllNodes() {
		if !v.done[n] {
			cycles = append(cycles, v.visit(n)...)
		}
	}
	return v.sorted, cycles
}

type visitor[Node comparable] struct {
	g        adjacency[Node]
	done     map[Node]bool
	visiting []Node
	visitPos map[Node]int
	sorted   []Node
}

// visit performs a DFS from n, appending to v.sorted in post-order
// (children before parents), and reporting any cycle whose back-edge
// closes onto a node still on the visiting stack.
func (v *visitor[Node]) visit(n Node) (cycles [][]Node) {
	if v.visitPos == nil {
		v.visitPos = make(map[Node]int)
	}
	if pos, onStack := v.visitPos[n]; onStack {
		cycle := append([]Node{}, v.visiting[pos:]...)
		cycle = append(cycle, n)
		return [][]Node{cycle}
	}
	if v.done[n] {
		return nil
	}
	v.visitPos[n] = len(v.visiting)
	v.visiting = append(v.visiting, n)
	for _, e := range v.g.EdgesFrom(n) {
		cycles = append(cycles, v.visit(e.To)...)
	}
	v.visiting = v.visiting[:len(v.visiting)-1]
	delete(v.visitPos, n)
	v.done[n] = true
	v.sorted = append(v.sorted, n)
	return cycles
}

// DFS returns the nodes reachable from start in depth-first pre-order.
func DFS[Node comparable](g adjacency[Node], start Node) []Node {
	seen := map[Node]bool{start: true}
	var order []Node
	var walk func(Node)
	walk = func(n Node) {
		order = append(order, n)
		for _, e := range g.EdgesFrom(n) {
			if !seen[e.To] {
				seen[e.To] = true
				walk(e.To)
			}
		}
	}
	walk(start)
	return order
}

// BFS returns the nodes reachable from start in breadth-first order.
func BFS[Node comparable](g adjacency[Node], start Node) []Node {
	seen := map[Node]bool{start: true}
	order := []Node{start}
	queue := []Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.EdgesFrom(n) {
			if !seen[e.To] {
				seen[e.To] = true
				order = append(order, e.To)
				queue = append(queue, e.To)
			}
		}
	}
	return order
}
