package extractor

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/scanner"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

type Extractor interface {
	Extract(ctx context.Context, units []scanner.FileUnit) ([]*core.DocumentNode, error)
}

// TreeExtractor parses the serialized tree of every unit. Files that do
// not parse are logged and left out; the rest keep the order of units.
type TreeExtractor struct {
	Workers int
	Log     logrus.FieldLogger
}

func NewTreeExtractor(workers int, log logrus.FieldLogger) *TreeExtractor {
	if workers <= 0 {
		workers = 1
	}
	return &TreeExtractor{Workers: workers, Log: log}
}

func (e *TreeExtractor) Extract(ctx context.Context, units []scanner.FileUnit) ([]*core.DocumentNode, error) {
	docs := make([]*core.DocumentNode, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Workers)
	for i, fu := range units {
		i, fu := i, fu
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := treeparser.Parse(fu.Line)
			if err != nil {
				e.logSkip(fu, err)
				return nil
			}
			docs[i] = core.NewDocument(fu.Filename, fu.RelPath, fu.ReviewID, tree)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*core.DocumentNode, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}
	e.Log.WithFields(logrus.Fields{"files": len(units), "parsed": len(out)}).Info("trees extracted")
	return out, nil
}

func (e *TreeExtractor) logSkip(fu scanner.FileUnit, err error) {
	entry := e.Log.WithFields(logrus.Fields{"file": fu.RelPath, "review": fu.ReviewID})
	var mt *treeparser.MalformedTreeError
	if errors.As(err, &mt) {
		entry = entry.WithField("offset", mt.Offset)
	}
	entry.WithError(err).Warn("malformed tree, file skipped")
}
