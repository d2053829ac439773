package hierarchy

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true)
	enumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
)

// RenderText draws each root as an indented tree, one after the other. A
// node on a path back to itself is cut with a "(cycle)" marker.
func RenderText(f *Forest) string {
	parts := make([]string, 0, len(f.Roots))
	for _, r := range f.Roots {
		t := newTree(rootStyle.Render(r.Value))
		addChildren(t, r, map[*treeparser.TreeNode]bool{r: true})
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "\n\n")
}

func addChildren(t *tree.Tree, n *treeparser.TreeNode, path map[*treeparser.TreeNode]bool) {
	for _, c := range n.Children {
		if path[c] {
			t.Child(c.Value + " (cycle)")
			continue
		}
		if len(c.Children) == 0 {
			t.Child(c.Value)
			continue
		}
		sub := newTree(c.Value)
		path[c] = true
		addChildren(sub, c, path)
		delete(path, c)
		t.Child(sub)
	}
}

func newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
}
