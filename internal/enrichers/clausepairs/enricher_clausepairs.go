package clausepairs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

type Config struct {
	// Relations scopes extraction: the pairs of each relation are collected
	// in turn with RelationToPairs. Empty means every pair via ToPairs.
	Relations []string
}

type Enricher struct {
	cfg Config
	log logrus.FieldLogger
}

func New(cfg Config, log logrus.FieldLogger) *Enricher { return &Enricher{cfg: cfg, log: log} }

func (e *Enricher) Kind() core.AspectKind { return core.AspectClausePairs }

func (e *Enricher) Enrich(ctx context.Context, corpus *core.CorpusNode) error {
	if corpus == nil {
		return nil
	}
	total := 0
	for _, d := range corpus.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		pairs, err := e.pairs(d.Tree)
		if err != nil {
			// only arity errors come back from the pair walkers
			e.log.WithFields(logrus.Fields{"file": d.RelPath, "review": d.ReviewID}).
				WithError(err).Warn("bad relation node, pairs skipped")
			continue
		}
		if len(pairs) > 0 {
			d.Aspects[core.AspectClausePairs] = pairs
			total += len(pairs)
		}
	}
	e.log.WithField("pairs", total).Info("clause pairs extracted")
	return nil
}

func (e *Enricher) pairs(tree *treeparser.TreeNode) ([]treeparser.Pair, error) {
	if len(e.cfg.Relations) == 0 {
		return treeparser.ToPairs(tree)
	}
	var out []treeparser.Pair
	for _, rel := range e.cfg.Relations {
		p, err := treeparser.RelationToPairs(tree, rel)
		if err != nil {
			return nil, err
		}
		out = append(out, p...)
	}
	return out, nil
}
