// Package aspects turns clause pairs into aspect pairs: noun chunks are
// tagged on both sides of a clause pair, crossed, filtered against the
// primary aspect list and ranked by frequency.
package aspects

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vd09-projects/rst-aspect-miner/internal/annotate"
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

// Candidates holds the tagged clause pairs of one review. Clause pairs where
// either side has no noun chunk are left out.
type Candidates struct {
	ReviewID string
	Pairs    []model.ChunkPair
}

// NounPairs tags both clauses of every pair with ann in a single call.
// Aliases are substituted in the clause text first and the substituted text
// is what gets recorded.
func NounPairs(ctx context.Context, ann annotate.Annotator, reviewID string, clauses []treeparser.Pair, aliases map[string]string) (Candidates, error) {
	out := Candidates{ReviewID: reviewID}
	if len(clauses) == 0 {
		return out, nil
	}
	rep := aliasReplacer(aliases)
	texts := make([]string, 0, 2*len(clauses))
	subst := make([]treeparser.Pair, len(clauses))
	for i, p := range clauses {
		subst[i] = treeparser.Pair{First: rep.Replace(p.First), Second: rep.Replace(p.Second)}
		texts = append(texts, subst[i].First, subst[i].Second)
	}
	chunks, err := ann.NounChunks(ctx, texts)
	if err != nil {
		return out, fmt.Errorf("aspects: review %s: %w", reviewID, err)
	}
	if len(chunks) != len(texts) {
		return out, fmt.Errorf("aspects: review %s: %d chunk lists for %d texts", reviewID, len(chunks), len(texts))
	}
	for i, p := range subst {
		first, second := chunks[2*i], chunks[2*i+1]
		if len(first) == 0 || len(second) == 0 {
			continue
		}
		out.Pairs = append(out.Pairs, model.ChunkPair{Clause: p, First: first, Second: second})
	}
	return out, nil
}

// aliasReplacer rewrites longer aliases first so overlapping names resolve
// the same way on every run.
func aliasReplacer(aliases map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, aliases[k])
	}
	return strings.NewReplacer(args...)
}

// CrossPairs pairs every chunk of the first clause with every chunk of the
// second, first-clause major.
func CrossPairs(cp model.ChunkPair) []model.AspectPair {
	out := make([]model.AspectPair, 0, len(cp.First)*len(cp.Second))
	for _, x := range cp.First {
		for _, y := range cp.Second {
			out = append(out, model.AspectPair{Parent: x, Child: y})
		}
	}
	return out
}

// CrossAll flattens CrossPairs over many chunk pairs.
func CrossAll(cps []model.ChunkPair) []model.AspectPair {
	var out []model.AspectPair
	for _, cp := range cps {
		out = append(out, CrossPairs(cp)...)
	}
	return out
}
