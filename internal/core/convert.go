package core

import (
	"sort"

	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

func ToRecords(corpus *CorpusNode) []model.Record {
	var out []model.Record
	for _, d := range corpus.Documents {
		rec := model.Record{
			ReviewID: d.ReviewID,
			Path:     d.RelPath,
		}
		if v, ok := d.Aspects[AspectRelations].([]string); ok {
			rec.Relations = v
		}
		if v, ok := d.Aspects[AspectClausePairs].([]treeparser.Pair); ok {
			rec.ClausePairs = v
		}
		if v, ok := d.Aspects[AspectNounPairs].([]model.ChunkPair); ok {
			rec.NounPairs = v
		}
		if v, ok := d.Aspects[AspectGraph].(string); ok {
			rec.Graph = v
		}
		out = append(out, rec)
	}

	// Stable order: review id asc, path asc
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReviewID == out[j].ReviewID {
			return out[i].Path < out[j].Path
		}
		return out[i].ReviewID < out[j].ReviewID
	})
	return out
}

// ClausePairs returns the clause pairs attached to doc, if any.
func (d *DocumentNode) ClausePairs() []treeparser.Pair {
	v, _ := d.Aspects[AspectClausePairs].([]treeparser.Pair)
	return v
}

// NounPairs returns the tagged clause pairs attached to doc, if any.
func (d *DocumentNode) NounPairs() []model.ChunkPair {
	v, _ := d.Aspects[AspectNounPairs].([]model.ChunkPair)
	return v
}
