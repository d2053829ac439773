package nounchunks

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/annotate"
	"github.com/vd09-projects/rst-aspect-miner/internal/aspects"
	"github.com/vd09-projects/rst-aspect-miner/internal/core"
)

type Config struct {
	Aliases map[string]string // rewritten in clause text before tagging
}

// Enricher tags the clause pairs found by the clausepairs enricher. It must
// run after it.
type Enricher struct {
	cfg Config
	ann annotate.Annotator
	log logrus.FieldLogger
}

func New(cfg Config, ann annotate.Annotator, log logrus.FieldLogger) *Enricher {
	return &Enricher{cfg: cfg, ann: ann, log: log}
}

func (e *Enricher) Kind() core.AspectKind { return core.AspectNounPairs }

func (e *Enricher) Enrich(ctx context.Context, corpus *core.CorpusNode) error {
	if corpus == nil {
		return nil
	}
	for _, d := range corpus.Documents {
		clauses := d.ClausePairs()
		if len(clauses) == 0 {
			continue
		}
		c, err := aspects.NounPairs(ctx, e.ann, d.ReviewID, clauses, e.cfg.Aliases)
		if err != nil {
			return err
		}
		if len(c.Pairs) > 0 {
			d.Aspects[core.AspectNounPairs] = c.Pairs
		}
		e.log.WithFields(logrus.Fields{"review": d.ReviewID, "clauses": len(clauses), "tagged": len(c.Pairs)}).Debug("noun chunks tagged")
	}
	return nil
}

// Candidates collects the tagged pairs of every document, in corpus order.
func Candidates(corpus *core.CorpusNode) []aspects.Candidates {
	var out []aspects.Candidates
	for _, d := range corpus.Documents {
		if cps := d.NounPairs(); len(cps) > 0 {
			out = append(out, aspects.Candidates{ReviewID: d.ReviewID, Pairs: cps})
		}
	}
	return out
}
