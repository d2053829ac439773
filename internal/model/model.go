package model

import (
	"encoding/json"
	"fmt"

	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

// AspectPair links a broader aspect to a narrower one. It is stored as a
// two element JSON array: ["mattress", "smell"].
type AspectPair struct {
	Parent string
	Child  string
}

func (p AspectPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Parent, p.Child})
}

func (p *AspectPair) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("model: aspect pair needs 2 elements, got %d", len(arr))
	}
	p.Parent, p.Child = arr[0], arr[1]
	return nil
}

func (p AspectPair) String() string { return fmt.Sprintf("(%s, %s)", p.Parent, p.Child) }

// ChunkPair keeps the noun chunks found on each side of a clause pair next to
// the clauses they came from.
type ChunkPair struct {
	Clause treeparser.Pair `json:"clause"`
	First  []string        `json:"first"`
	Second []string        `json:"second"`
}

// Record is one line of the per-review JSONL output.
type Record struct {
	ReviewID    string            `json:"review_id"`
	Path        string            `json:"path"`
	Relations   []string          `json:"relations,omitempty"`
	ClausePairs []treeparser.Pair `json:"clause_pairs,omitempty"`
	NounPairs   []ChunkPair       `json:"noun_pairs,omitempty"`
	Graph       string            `json:"graph,omitempty"` // rendered RST graph, if any
}

func (r Record) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
