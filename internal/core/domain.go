package core

import "github.com/vd09-projects/rst-aspect-miner/internal/treeparser"

type AspectKind string

const (
	AspectRelations   AspectKind = "relations"
	AspectClausePairs AspectKind = "clause_pairs"
	AspectNounPairs   AspectKind = "noun_pairs"
	AspectGraph       AspectKind = "graph"
)

type CorpusNode struct {
	Root      string
	Documents []*DocumentNode
}

// DocumentNode is one parsed review. Enrichers attach their results to
// Aspects under their own kind.
type DocumentNode struct {
	Filename string
	RelPath  string
	ReviewID string
	Tree     *treeparser.TreeNode
	Aspects  map[AspectKind]any
}

func NewDocument(filename, relPath, reviewID string, tree *treeparser.TreeNode) *DocumentNode {
	return &DocumentNode{
		Filename: filename,
		RelPath:  relPath,
		ReviewID: reviewID,
		Tree:     tree,
		Aspects:  make(map[AspectKind]any),
	}
}
