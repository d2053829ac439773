package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers"
	"github.com/vd09-projects/rst-aspect-miner/internal/extractor"
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/scanner"
	"github.com/vd09-projects/rst-aspect-miner/internal/stream"
)

type Options struct {
	Root string
}

type Pipeline struct {
	Reader    scanner.SourceReader
	Extractor extractor.Extractor
	Enrichers []enrichers.Enricher
	Emitter   stream.Emitter[model.Record] // optional
	Log       logrus.FieldLogger
}

func New(reader scanner.SourceReader, ex extractor.Extractor, ens []enrichers.Enricher, em stream.Emitter[model.Record], log logrus.FieldLogger) *Pipeline {
	return &Pipeline{Reader: reader, Extractor: ex, Enrichers: ens, Emitter: em, Log: log}
}

// Run lists, parses and enriches the corpus, emits one record per document
// when an emitter is set, and returns the enriched corpus.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*core.CorpusNode, error) {
	// list & build in-memory corpus
	units, err := p.Reader.List()
	if err != nil {
		return nil, err
	}
	docs, err := p.Extractor.Extract(ctx, units)
	if err != nil {
		return nil, err
	}
	corpus := &core.CorpusNode{Root: opts.Root, Documents: docs}

	// enrichment passes
	for _, enr := range p.Enrichers {
		if err := enr.Enrich(ctx, corpus); err != nil {
			return nil, fmt.Errorf("pipeline: %s: %w", enr.Kind(), err)
		}
		p.Log.WithField("aspect", enr.Kind()).Debug("enrichment done")
	}

	if p.Emitter == nil {
		return corpus, nil
	}
	// flatten -> records
	recs := core.ToRecords(corpus)
	if err := p.Emitter.Emit(recs); err != nil {
		p.Emitter.Close()
		return nil, err
	}
	if err := p.Emitter.Close(); err != nil {
		return nil, err
	}
	p.Log.WithField("records", len(recs)).Info("records written")
	return corpus, nil
}
