package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/vd09-projects/rst-aspect-miner/internal/annotate"
	"github.com/vd09-projects/rst-aspect-miner/internal/aspects"
	"github.com/vd09-projects/rst-aspect-miner/internal/config"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/clausepairs"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/nounchunks"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/relations"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/rstgraph"
	"github.com/vd09-projects/rst-aspect-miner/internal/extractor"
	"github.com/vd09-projects/rst-aspect-miner/internal/graph"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/pairstore"
	"github.com/vd09-projects/rst-aspect-miner/internal/pipeline"
	"github.com/vd09-projects/rst-aspect-miner/internal/scanner"
	"github.com/vd09-projects/rst-aspect-miner/internal/stream"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

func main() {
	var (
		configPath = flag.String("config", "rst-aspect-miner.yaml", "Path to YAML config (defaults apply when missing)")
		dir        = flag.String("dir", "", "RST parser results directory (overrides corpus.dir)")
		excludeCSV = flag.String("exclude", "", "Comma-separated regex of file names to skip (overrides corpus.exclude)")
		workers    = flag.Int("workers", 0, "Parallel parse workers (overrides corpus.workers)")

		outPath   = flag.String("out", "", "Path to JSONL record output (optional, defaults to stdout)")
		pairsPath = flag.String("pairs", "", "Noun pair store (default <output.dir>/noun_pairs.jsonl)")
		graphsDir = flag.String("graphs", "", "Directory for per-review RST graphs (overrides output.graphs; empty disables)")
		noChunks  = flag.Bool("no-chunks", false, "Skip noun chunk tagging, emit clause pairs only")

		debug = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log := logging.New(*debug)
	cfg, err := config.Load(*configPath)
	utils.MustNotErr(log, err)
	if *dir != "" {
		cfg.Corpus.Dir = *dir
	}
	if *excludeCSV != "" {
		cfg.Corpus.Exclude = *excludeCSV
	}
	if *workers > 0 {
		cfg.Corpus.Workers = *workers
	}
	if *graphsDir != "" {
		cfg.Output.Graphs = *graphsDir
	}
	if *pairsPath == "" {
		*pairsPath = filepath.Join(cfg.Output.Dir, "noun_pairs.jsonl")
	}

	ctx := context.Background()
	ens := []enrichers.Enricher{
		relations.New(log),
		clausepairs.New(clausepairs.Config{}, log),
	}
	if cfg.Output.Graphs != "" {
		var r *graph.Renderer
		if cfg.Graphviz.Format != "dot" {
			r = graph.NewRenderer(cfg.Graphviz.Binary, cfg.Graphviz.Format)
		}
		ens = append(ens, rstgraph.New(rstgraph.Config{OutDir: cfg.Output.Graphs, Renderer: r}, log))
	}
	if !*noChunks {
		ann, err := annotate.Open(ctx, annotate.Config{
			Endpoint: cfg.Annotator.Endpoint,
			Timeout:  cfg.Annotator.Timeout,
			Lexicon:  cfg.Annotator.Lexicon,
		}, log)
		utils.MustNotErr(log, err)
		ens = append(ens, nounchunks.New(nounchunks.Config{Aliases: cfg.Aliases}, ann, log))
	}

	pl := pipeline.New(
		scanner.NewParseFileReader(cfg.Corpus.Dir, cfg.Corpus.Pattern, cfg.Corpus.Exclude, log),
		extractor.NewTreeExtractor(cfg.Corpus.Workers, log),
		ens,
		stream.NewJSONLEmitter[model.Record](*outPath, nil, true),
		log,
	)
	corpus, err := pl.Run(ctx, pipeline.Options{Root: cfg.Corpus.Dir})
	utils.MustNotErr(log, err)

	if *noChunks {
		return
	}
	var pairs []model.AspectPair
	for _, d := range corpus.Documents {
		pairs = append(pairs, aspects.CrossAll(d.NounPairs())...)
	}
	utils.MustNotErr(log, pairstore.Save(*pairsPath, pairs))
	log.WithField("path", *pairsPath).WithField("pairs", len(pairs)).Info("noun pairs saved")
}
