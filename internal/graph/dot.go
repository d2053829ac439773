package graph

import (
	"os"
	"path/filepath"

	"github.com/emicklei/dot"
)

// ToDOT renders g as a directed Graphviz document.
func ToDOT(g *Graph) string {
	d := dot.NewGraph(dot.Directed)
	nodes := make(map[string]dot.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		node := d.Node(n.ID)
		node.Attr("label", n.Label)
		nodes[n.ID] = node
	}
	lookup := func(id string) dot.Node {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := d.Node(id)
		nodes[id] = n
		return n
	}
	for _, e := range g.Edges {
		if e.Label == "" {
			d.Edge(lookup(e.From), lookup(e.To))
			continue
		}
		d.Edge(lookup(e.From), lookup(e.To), e.Label)
	}
	return d.String()
}

// WriteDOT writes the DOT form of g to path, creating its directory.
func WriteDOT(path string, g *Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ToDOT(g)), 0o644)
}
