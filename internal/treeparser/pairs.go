package treeparser

import "strings"

// Pair is two clauses joined by a nucleus/satellite relation, nucleus first.
type Pair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// ToPairs collects, in postorder, every pair of leaf clauses hanging directly
// off a node tagged with both [N] and [S].
func ToPairs(n *TreeNode) ([]Pair, error) {
	return pairs(n, true)
}

// RelationToPairs is ToPairs scoped to one relation: the sub trees of n are
// only searched when n itself is that relation. Below a match every pair is
// collected, whatever its relation. A pair of leaves directly under n is
// emitted regardless of the relation of n.
func RelationToPairs(n *TreeNode, relation string) ([]Pair, error) {
	return pairs(n, RelationName(n.Value) == relation)
}

func pairs(n *TreeNode, descend bool) ([]Pair, error) {
	if !IsRelation(n.Value) {
		return nil, nil
	}
	first, second, err := orderedChildren(n)
	if err != nil {
		return nil, err
	}
	var out []Pair
	if descend {
		for _, c := range [2]*TreeNode{first, second} {
			if !IsRelation(c.Value) {
				continue
			}
			sub, err := ToPairs(c)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	if p, ok := leafPair(n, first, second); ok {
		out = append(out, p)
	}
	return out, nil
}

// orderedChildren returns the two children of a relation node in nucleus,
// satellite order. Labels ending in [N] list the satellite first.
func orderedChildren(n *TreeNode) (first, second *TreeNode, err error) {
	if len(n.Children) != 2 {
		return nil, nil, &ArityError{Label: n.Value, Children: len(n.Children)}
	}
	first, second = n.Children[0], n.Children[1]
	if strings.HasSuffix(n.Value, nucleusTag) {
		first, second = second, first
	}
	return first, second, nil
}

func leafPair(n, first, second *TreeNode) (Pair, bool) {
	if IsRelation(first.Value) || IsRelation(second.Value) || !IsLabeledBoth(n.Value) {
		return Pair{}, false
	}
	return Pair{First: first.Value, Second: second.Value}, true
}

// FindRelations lists the relation name of every node tagged with both [N]
// and [S], children before parents. Nodes lacking either tag end the descent.
func FindRelations(n *TreeNode) ([]string, error) {
	if !IsLabeledBoth(n.Value) {
		return nil, nil
	}
	if len(n.Children) != 2 {
		return nil, &ArityError{Label: n.Value, Children: len(n.Children)}
	}
	var rels []string
	for _, c := range n.Children {
		sub, err := FindRelations(c)
		if err != nil {
			return nil, err
		}
		rels = append(rels, sub...)
	}
	return append(rels, RelationName(n.Value)), nil
}
