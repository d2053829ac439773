package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vd09-projects/rst-aspect-miner/internal/annotate"
	"github.com/vd09-projects/rst-aspect-miner/internal/aspects"
	"github.com/vd09-projects/rst-aspect-miner/internal/config"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/clausepairs"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/nounchunks"
	"github.com/vd09-projects/rst-aspect-miner/internal/extractor"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/pairstore"
	"github.com/vd09-projects/rst-aspect-miner/internal/pipeline"
	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
	"github.com/vd09-projects/rst-aspect-miner/internal/reviews"
	"github.com/vd09-projects/rst-aspect-miner/internal/scanner"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

func main() {
	var (
		configPath = flag.String("config", "rst-aspect-miner.yaml", "Path to YAML config (defaults apply when missing)")
		brand      = flag.String("brand", reviews.AllBrands, "Brand to mine, or All")
		dir        = flag.String("dir", "", "RST parser results directory (overrides corpus.dir)")
		dataFile   = flag.String("data", "", "Review CSV (overrides reviews.file)")
		keyword    = flag.String("keyword", "", "Product keyword (overrides selection.keyword)")
		topK       = flag.Int("top-k", 0, "Secondary pairs kept by frequency (overrides selection.top_k)")
		outPath    = flag.String("out", "", "Pair store path (default <output.dir>/<brand>_pairs.jsonl)")
		reportPath = flag.String("report", "", "Write the per-review report here (optional, defaults to stdout)")
		noReport   = flag.Bool("no-report", false, "Skip the per-review report")

		debug = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log := logging.New(*debug).WithField("brand", *brand)
	cfg, err := config.Load(*configPath)
	utils.MustNotErr(log, err)
	if *dir != "" {
		cfg.Corpus.Dir = *dir
	}
	if *dataFile != "" {
		cfg.Reviews.File = *dataFile
	}
	if *keyword != "" {
		cfg.Selection.Keyword = *keyword
	}
	if *topK > 0 {
		cfg.Selection.TopK = *topK
	}
	if *outPath == "" {
		*outPath = cfg.PairsPath(*brand)
	}

	table, err := reviews.Load(cfg.Reviews.File)
	utils.MustNotErr(log, err)
	ids := table.ReviewIDs(*brand, float64(cfg.Reviews.MinRating))
	if len(ids) == 0 {
		if s, ok := table.SuggestBrand(*brand); ok && s != *brand {
			log.Fatalf("no reviews for brand %q, did you mean %q?", *brand, s)
		}
		log.Fatalf("no reviews for brand %q", *brand)
	}
	words, err := resources.Load(cfg.Resources)
	utils.MustNotErr(log, err)

	ctx := context.Background()
	ann, err := annotate.Open(ctx, annotate.Config{
		Endpoint: cfg.Annotator.Endpoint,
		Timeout:  cfg.Annotator.Timeout,
		Lexicon:  cfg.Annotator.Lexicon,
	}, log)
	utils.MustNotErr(log, err)

	pl := pipeline.New(
		scanner.NewParseFileReader(cfg.Corpus.Dir, cfg.Corpus.Pattern, cfg.Corpus.Exclude, log).WithReviews(ids),
		extractor.NewTreeExtractor(cfg.Corpus.Workers, log),
		[]enrichers.Enricher{
			clausepairs.New(clausepairs.Config{Relations: words.Relations}, log),
			nounchunks.New(nounchunks.Config{Aliases: cfg.Aliases}, ann, log),
		},
		nil,
		log,
	)
	corpus, err := pl.Run(ctx, pipeline.Options{Root: cfg.Corpus.Dir})
	utils.MustNotErr(log, err)

	selected := aspects.RelationBased(nounchunks.Candidates(corpus), words.PrimaryAspects, cfg.Selection.Keyword)
	pairs := aspects.DefaultRegistry().Generate(aspects.Input{
		Brand:    *brand,
		Keyword:  cfg.Selection.Keyword,
		Selected: selected,
		Words:    words,
		TopK:     cfg.Selection.TopK,
	})
	utils.MustNotErr(log, pairstore.Save(*outPath, pairs))
	log.WithFields(logrus.Fields{
		"reviews":  len(ids),
		"selected": len(selected),
		"pairs":    len(pairs),
		"path":     *outPath,
	}).Info("aspect pairs saved")

	if !*noReport {
		utils.MustNotErr(log, writeReport(*reportPath, aspects.Report(selected, words)))
	}
}

func writeReport(path string, entries []aspects.ReportEntry) error {
	if path == "" {
		return aspects.WriteReport(os.Stdout, entries)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := aspects.WriteReport(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("report: %w", err)
	}
	return f.Close()
}
