package relations

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

// Enricher lists the relations of each tree.
type Enricher struct{ log logrus.FieldLogger }

func New(log logrus.FieldLogger) *Enricher { return &Enricher{log: log} }

func (e *Enricher) Kind() core.AspectKind { return core.AspectRelations }

func (e *Enricher) Enrich(ctx context.Context, corpus *core.CorpusNode) error {
	if corpus == nil {
		return nil
	}
	for _, d := range corpus.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		rels, err := treeparser.FindRelations(d.Tree)
		if err != nil {
			e.log.WithFields(logrus.Fields{"file": d.RelPath, "review": d.ReviewID}).
				WithError(err).Warn("bad relation node, relations skipped")
			continue
		}
		if len(rels) > 0 {
			d.Aspects[core.AspectRelations] = rels
		}
	}
	return nil
}
