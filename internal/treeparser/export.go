package treeparser

import "github.com/vd09-projects/rst-aspect-miner/internal/graph"

// RSTGraph exports an RST tree: nodes are labeled with their relation name
// and edges with the role tag of the child they lead to.
func RSTGraph(n *TreeNode, name string) *graph.Graph {
	g := graph.New(name)
	addRST(g, graph.NewIDs[*TreeNode](), n)
	return g
}

func addRST(g *graph.Graph, ids *graph.IDs[*TreeNode], n *TreeNode) string {
	id, _ := ids.Of(n)
	g.AddNode(id, RelationName(n.Value))
	tags := RoleTags(n.Value)
	for i, c := range n.Children {
		if i >= len(tags) {
			break
		}
		g.AddEdge(id, addRST(g, ids, c), tags[i])
	}
	return id
}

// AspectGraph exports an aspect hierarchy. A node reachable from several
// parents appears once, with one edge per parent.
func AspectGraph(name string, roots ...*TreeNode) *graph.Graph {
	g := graph.New(name)
	ids := graph.NewIDs[*TreeNode]()
	for _, r := range roots {
		addAspect(g, ids, r)
	}
	return g
}

func addAspect(g *graph.Graph, ids *graph.IDs[*TreeNode], n *TreeNode) string {
	id, fresh := ids.Of(n)
	if !fresh {
		return id
	}
	g.AddNode(id, n.Value)
	for _, c := range n.Children {
		g.AddEdge(id, addAspect(g, ids, c), "")
	}
	return id
}
