package enrichers

import (
	"context"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
)

type Enricher interface {
	Kind() core.AspectKind
	Enrich(ctx context.Context, corpus *core.CorpusNode) error
}
