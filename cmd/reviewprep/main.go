package main

import (
	"flag"

	"github.com/vd09-projects/rst-aspect-miner/internal/config"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/reviews"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

func main() {
	var (
		configPath = flag.String("config", "rst-aspect-miner.yaml", "Path to YAML config (defaults apply when missing)")
		dataFile   = flag.String("data", "", "Review CSV (overrides reviews.file)")
		outDir     = flag.String("out", "", "Directory for <id>.txt files (overrides reviews.text_dir)")
		brand      = flag.String("brand", reviews.AllBrands, "Only write this brand's reviews")
		initConfig = flag.Bool("init-config", false, "Write a default config file at -config and exit")

		debug = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log := logging.New(*debug)
	if *initConfig {
		utils.MustNotErr(log, config.WriteDefault(*configPath))
		log.WithField("path", *configPath).Info("config ready")
		return
	}
	cfg, err := config.Load(*configPath)
	utils.MustNotErr(log, err)
	if *dataFile != "" {
		cfg.Reviews.File = *dataFile
	}
	if *outDir != "" {
		cfg.Reviews.TextDir = *outDir
	}

	table, err := reviews.Load(cfg.Reviews.File)
	utils.MustNotErr(log, err)
	var revs []reviews.Review
	for _, r := range table.Reviews {
		if *brand != reviews.AllBrands && r.Brand != *brand {
			continue
		}
		revs = append(revs, r.Abbreviated())
	}
	paths, err := reviews.WriteTexts(cfg.Reviews.TextDir, revs)
	utils.MustNotErr(log, err)
	log.WithField("dir", cfg.Reviews.TextDir).WithField("files", len(paths)).Info("review texts written")
}
