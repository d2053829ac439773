package treeparser

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	nucleusTag   = "[N]"
	satelliteTag = "[S]"

	// roleSuffixLen is the length of a two-tag suffix such as "[N][S]".
	roleSuffixLen = 6
)

var roleTagRe = regexp.MustCompile(`\[(.)\]`)

// TreeNode is one node of an RST tree. Relation nodes carry labels like
// "Elaboration[N][S]"; leaves carry a text clause.
type TreeNode struct {
	Value    string
	Children []*TreeNode
}

// NewNode builds a node with the given children.
func NewNode(value string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Value: value, Children: children}
}

// IsLeaf reports whether the node is a text clause rather than a relation.
func (n *TreeNode) IsLeaf() bool { return !IsRelation(n.Value) }

// IsLabeledBoth reports whether label holds both a nucleus and a satellite tag.
func IsLabeledBoth(label string) bool {
	return strings.Contains(label, nucleusTag) && strings.Contains(label, satelliteTag)
}

// IsRelation reports whether label names a relation node.
func IsRelation(label string) bool {
	return strings.HasSuffix(label, nucleusTag) || strings.HasSuffix(label, satelliteTag)
}

// RoleTags returns every single-character [X] tag of label in order. For a
// relation node the tags line up with its children.
func RoleTags(label string) []string {
	var tags []string
	for _, m := range roleTagRe.FindAllStringSubmatch(label, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// RelationName strips the trailing role suffix from label. The strip is a
// fixed 6 bytes and happens whenever label contains "[N]"; labels without a
// nucleus tag are returned unchanged.
func RelationName(label string) string {
	if strings.Contains(label, nucleusTag) && len(label) >= roleSuffixLen {
		return label[:len(label)-roleSuffixLen]
	}
	return label
}

// AddChild appends child to parent unless that exact node is already attached.
func AddChild(parent, child *TreeNode) {
	for _, c := range parent.Children {
		if c == child {
			return
		}
	}
	parent.Children = append(parent.Children, child)
}

// FindByValue does a preorder search of the whole subtree rooted at n and
// returns the first node whose value equals value, or nil.
func FindByValue(n *TreeNode, value string) *TreeNode {
	if n == nil {
		return nil
	}
	if n.Value == value {
		return n
	}
	for _, c := range n.Children {
		if found := FindByValue(c, value); found != nil {
			return found
		}
	}
	return nil
}

// Pretty returns an indented dump of the tree, one node per line.
func Pretty(n *TreeNode) string {
	var b strings.Builder
	pretty(&b, n, 0)
	return b.String()
}

func pretty(b *strings.Builder, n *TreeNode, level int) {
	indent := strings.Repeat("  ", level)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, "%sVal: %q\n", indent, n.Value)
		return
	}
	fmt.Fprintf(b, "%sTreeNode %q\n", indent, n.Value)
	for _, c := range n.Children {
		pretty(b, c, level+1)
	}
}
