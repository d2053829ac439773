// Package hierarchy assembles aspect pairs into a forest of aspect trees.
package hierarchy

import (
	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/graph"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

// Cycle records a pair whose edge was dropped because the child already
// reaches the parent.
type Cycle struct {
	Pair model.AspectPair
}

// Forest is the assembled hierarchy. Nodes are shared by value, so a node
// with several parents appears under each of them.
type Forest struct {
	Roots  []*treeparser.TreeNode
	Nodes  map[string]*treeparser.TreeNode
	Cycles []Cycle
}

type Option func(*builder)

// WithLogger reports dropped cycle edges to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *builder) { b.log = log }
}

type builder struct {
	log logrus.FieldLogger
}

// BuildForest links every (parent, child) pair unless the edge would close a
// cycle. Roots are the values that never appear as a child in any pair,
// including pairs whose edge was dropped, in first-seen order.
func BuildForest(pairs []model.AspectPair, opts ...Option) *Forest {
	b := builder{log: logging.Discard()}
	for _, o := range opts {
		o(&b)
	}

	f := &Forest{Nodes: make(map[string]*treeparser.TreeNode)}
	var order []string
	node := func(v string) *treeparser.TreeNode {
		n, ok := f.Nodes[v]
		if !ok {
			n = treeparser.NewNode(v)
			f.Nodes[v] = n
			order = append(order, v)
		}
		return n
	}

	notRoot := make(map[string]bool)
	for _, p := range pairs {
		parent, child := node(p.Parent), node(p.Child)
		if treeparser.FindByValue(child, p.Parent) != nil {
			b.log.WithField("pair", p.String()).Warn("cycle in aspect pairs, edge dropped")
			f.Cycles = append(f.Cycles, Cycle{Pair: p})
		} else {
			treeparser.AddChild(parent, child)
		}
		notRoot[p.Child] = true
	}

	for _, v := range order {
		if !notRoot[v] {
			f.Roots = append(f.Roots, f.Nodes[v])
		}
	}
	return f
}

// Graph exports the forest with every node once.
func (f *Forest) Graph(name string) *graph.Graph {
	return treeparser.AspectGraph(name, f.Roots...)
}
