package enrichers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vd09-projects/rst-aspect-miner/internal/core"
	"github.com/vd09-projects/rst-aspect-miner/internal/corpustest"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/clausepairs"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/nounchunks"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/relations"
	"github.com/vd09-projects/rst-aspect-miner/internal/enrichers/rstgraph"
	"github.com/vd09-projects/rst-aspect-miner/internal/logging"
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
)

const contrastTree = `ParseTree('Contrast[S][N]', ['the smell was strong at first', 'it faded after a day .'])`

func corpus(t *testing.T, trees map[string]string) *core.CorpusNode {
	t.Helper()
	c := &core.CorpusNode{Root: "results"}
	for _, id := range []string{"1001", "1002", "1004"} {
		src, ok := trees[id]
		if !ok {
			continue
		}
		tree, err := treeparser.Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		c.Documents = append(c.Documents, core.NewDocument(id+".txt.parse", id+".txt.parse", id, tree))
	}
	return c
}

func run(t *testing.T, c *core.CorpusNode, ens ...enrichers.Enricher) {
	t.Helper()
	for _, e := range ens {
		if err := e.Enrich(context.Background(), c); err != nil {
			t.Fatalf("%s enricher: %v", e.Kind(), err)
		}
	}
}

func TestClausePairsAllRelations(t *testing.T) {
	c := corpus(t, map[string]string{"1001": corpustest.Review, "1004": `ParseTree('Elaboration[N][S]', ['only one child'])`})
	var logs bytes.Buffer
	run(t, c, clausepairs.New(clausepairs.Config{}, logging.NewWithOutput(&logs, false)))

	if got := len(c.Documents[0].ClausePairs()); got != 3 {
		t.Fatalf("expected 3 clause pairs, got %d", got)
	}
	if _, ok := c.Documents[1].Aspects[core.AspectClausePairs]; ok {
		t.Fatalf("arity violation should leave the document without pairs")
	}
	if !strings.Contains(logs.String(), "bad relation node") {
		t.Fatalf("expected arity warning, got:\n%s", logs.String())
	}
}

func TestClausePairsScopedToRelations(t *testing.T) {
	c := corpus(t, map[string]string{"1001": corpustest.Review, "1002": contrastTree})
	run(t, c, clausepairs.New(clausepairs.Config{Relations: []string{"Elaboration", "Contrast"}}, logging.Discard()))

	if got := len(c.Documents[0].ClausePairs()); got != 3 {
		t.Fatalf("expected the Elaboration pairs only, got %d", got)
	}
	// a leaf pair is emitted once per relation asked for
	want := []treeparser.Pair{
		{First: "it faded after a day .", Second: "the smell was strong at first"},
		{First: "it faded after a day .", Second: "the smell was strong at first"},
	}
	if got := c.Documents[1].ClausePairs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ClausePairs = %q, want %q", got, want)
	}
}

func TestRelations(t *testing.T) {
	c := corpus(t, map[string]string{"1002": contrastTree, "1004": `ParseTree('Elaboration[N][S]', ['only one child'])`})
	run(t, c, relations.New(logging.Discard()))
	if got := c.Documents[0].Aspects[core.AspectRelations]; !reflect.DeepEqual(got, []string{"Contrast"}) {
		t.Fatalf("relations = %v", got)
	}
	if _, ok := c.Documents[1].Aspects[core.AspectRelations]; ok {
		t.Fatalf("expected no relations for the broken tree")
	}
}

type fakeAnnotator map[string][]string

func (f fakeAnnotator) NounChunks(_ context.Context, texts []string) ([][]string, error) {
	out := make([][]string, len(texts))
	for i, t := range texts {
		out[i] = f[t]
	}
	return out, nil
}

func TestNounChunks(t *testing.T) {
	c := corpus(t, map[string]string{"1001": corpustest.Review, "1002": contrastTree})
	ann := fakeAnnotator{
		"This mattress is very comfortable ,": {"This mattress"},
		"been sleeping great with no pain .":  {"no pain"},
		"it faded after a day .":              {"a day"},
	}
	run(t, c,
		clausepairs.New(clausepairs.Config{}, logging.Discard()),
		nounchunks.New(nounchunks.Config{}, ann, logging.Discard()),
	)
	want := []model.ChunkPair{{
		Clause: treeparser.Pair{First: "This mattress is very comfortable ,", Second: "been sleeping great with no pain ."},
		First:  []string{"This mattress"},
		Second: []string{"no pain"},
	}}
	if got := c.Documents[0].NounPairs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("NounPairs = %+v, want %+v", got, want)
	}
	if got := c.Documents[1].NounPairs(); len(got) != 0 {
		t.Fatalf("expected no tagged pairs for 1002, got %+v", got)
	}
	cands := nounchunks.Candidates(c)
	if len(cands) != 1 || cands[0].ReviewID != "1001" {
		t.Fatalf("Candidates = %+v", cands)
	}
}

func TestRSTGraphWritesDOT(t *testing.T) {
	c := corpus(t, map[string]string{"1002": contrastTree})
	dir := filepath.Join(t.TempDir(), "graphs")
	run(t, c, rstgraph.New(rstgraph.Config{OutDir: dir}, logging.Discard()))

	out, _ := c.Documents[0].Aspects[core.AspectGraph].(string)
	if out != filepath.Join(dir, "1002.dot") {
		t.Fatalf("unexpected graph path %q", out)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Contrast") || strings.Count(string(b), "->") != 2 {
		t.Fatalf("unexpected DOT output:\n%s", b)
	}
	recs := core.ToRecords(c)
	if len(recs) != 1 || recs[0].Graph != out {
		t.Fatalf("graph path not carried into records: %+v", recs)
	}
}
