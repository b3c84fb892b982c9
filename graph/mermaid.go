package graph

import (
	"bytes"
	"fmt"
)

// ToMermaid renders g as a Mermaid flowchart (graph TD) diagram, one
// arrow per edge labeled with its weight, adapted from the teacher
// pack's mermaid.Marshaler onto the adjacency[Node] representation —
// simplified since node IDs here are just fmt.Sprint(n) rather than a
// caller-supplied NodeInfo.
func ToMermaid[Node comparable](g adjacency[Node]) []byte {
	var buf bytes.Buffer
	buf.WriteString("graph TD\n")
	for n := range g.AllNodes() {
		edges := g.EdgesFrom(n)
		if len(edges) == 0 {
			fmt.Fprintf(&buf, "  %v\n", n)
		}
		for _, e := range edges {
			fmt.Fprintf(&buf, "  %v-->|%g|%v\n", n, e.Weight, e.To)
		}
	}
	return buf.Bytes()
}
