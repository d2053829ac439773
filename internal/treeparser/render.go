package treeparser

import (
	"fmt"
	"strings"
)

// Render serializes n in the same grammar Parse reads. Nodes without children
// are written as quoted leaves.
func Render(n *TreeNode) (string, error) {
	var b strings.Builder
	if err := render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n *TreeNode) error {
	q, err := quoteText(n.Value)
	if err != nil {
		return err
	}
	if len(n.Children) == 0 {
		b.WriteString(q)
		return nil
	}
	b.WriteString(parseTreePrefix)
	b.WriteString(q)
	b.WriteString(", [")
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := render(b, c); err != nil {
			return err
		}
	}
	b.WriteString("])")
	return nil
}

// quoteText picks single quotes unless the text holds one, then double quotes.
func quoteText(s string) (string, error) {
	switch {
	case !strings.ContainsRune(s, '\''):
		return "'" + s + "'", nil
	case !strings.ContainsRune(s, '"'):
		return `"` + s + `"`, nil
	default:
		return "", fmt.Errorf("treeparser: cannot quote %q: it holds both quote styles", s)
	}
}
