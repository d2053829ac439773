package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vd09-projects/rst-aspect-miner/internal/config"
	"github.com/vd09-projects/rst-aspect-miner/internal/graph"
	"github.com/vd09-projects/rst-aspect-miner/internal/hierarchy"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/pairstore"
	"github.com/vd09-projects/rst-aspect-miner/internal/reviews"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
	"github.com/vd09-projects/rst-aspect-miner/internal/view"
)

func main() {
	var (
		configPath = flag.String("config", "rst-aspect-miner.yaml", "Path to YAML config (defaults apply when missing)")
		brand      = flag.String("brand", reviews.AllBrands, "Brand whose pair store is read")
		pairsPath  = flag.String("pairs", "", "Pair store path (default <output.dir>/<brand>_pairs.jsonl)")
		format     = flag.String("format", "text", "Output: text, dot, png (any Graphviz format) or tui")
		outDir     = flag.String("out", "", "Directory for dot/png output (overrides output.figures)")
		root       = flag.String("root", "", "Only show the tree under this aspect")

		debug = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log := logging.New(*debug).WithField("brand", *brand)
	cfg, err := config.Load(*configPath)
	utils.MustNotErr(log, err)
	if *pairsPath == "" {
		*pairsPath = cfg.PairsPath(*brand)
	}
	if *outDir != "" {
		cfg.Output.Figures = *outDir
	}

	pairs, err := pairstore.Load(*pairsPath)
	utils.MustNotErr(log, err)
	forest := hierarchy.BuildForest(pairs, hierarchy.WithLogger(log))
	if *root != "" {
		n, ok := forest.Nodes[*root]
		if !ok {
			log.Fatalf("aspect %q not found in %s", *root, *pairsPath)
		}
		forest.Roots = []*treeparser.TreeNode{n}
	}
	log.WithField("roots", len(forest.Roots)).WithField("cycles", len(forest.Cycles)).Debug("forest built")

	switch *format {
	case "text":
		fmt.Println(hierarchy.RenderText(forest))
	case "tui":
		utils.MustNotErr(log, view.Run(*brand+" aspects", hierarchy.RenderText(forest)))
	case "dot":
		out := filepath.Join(cfg.Output.Figures, *brand+".dot")
		utils.MustNotErr(log, graph.WriteDOT(out, forest.Graph("aspect_tree_graph")))
		log.WithField("path", out).Info("graph written")
	default:
		r := graph.NewRenderer(cfg.Graphviz.Binary, *format)
		out, err := r.Render(context.Background(), forest.Graph("aspect_tree_graph"), filepath.Join(cfg.Output.Figures, *brand))
		utils.MustNotErr(log, err)
		log.WithField("path", out).Info("graph rendered")
	}
	if len(forest.Cycles) > 0 {
		fmt.Fprintf(os.Stderr, "%d pair(s) dropped to break cycles\n", len(forest.Cycles))
	}
}
