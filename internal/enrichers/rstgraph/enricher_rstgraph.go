package rstgraph

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/graph"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

type Config struct {
	OutDir string
	// Renderer produces images; nil writes DOT files only.
	Renderer *graph.Renderer
}

// Enricher draws the RST tree of each document into OutDir as
// <review id>.<format>.
type Enricher struct {
	cfg Config
	log logrus.FieldLogger
}

func New(cfg Config, log logrus.FieldLogger) *Enricher { return &Enricher{cfg: cfg, log: log} }

func (e *Enricher) Kind() core.AspectKind { return core.AspectGraph }

func (e *Enricher) Enrich(ctx context.Context, corpus *core.CorpusNode) error {
	if corpus == nil {
		return nil
	}
	for _, d := range corpus.Documents {
		g := treeparser.RSTGraph(d.Tree, "rst_tree_graph")
		base := filepath.Join(e.cfg.OutDir, d.ReviewID)
		out, err := e.draw(ctx, g, base)
		if err != nil {
			return err
		}
		d.Aspects[core.AspectGraph] = out
	}
	e.log.WithFields(logrus.Fields{"dir": e.cfg.OutDir, "graphs": len(corpus.Documents)}).Info("rst graphs written")
	return nil
}

func (e *Enricher) draw(ctx context.Context, g *graph.Graph, base string) (string, error) {
	if e.cfg.Renderer == nil {
		out := base + ".dot"
		return out, graph.WriteDOT(out, g)
	}
	return e.cfg.Renderer.Render(ctx, g, base)
}
