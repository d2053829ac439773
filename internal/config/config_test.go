package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Selection.Keyword != "mattress" || c.Selection.TopK != 20 {
		t.Fatalf("unexpected selection defaults: %+v", c.Selection)
	}
	if c.Reviews.MinRating != 80 {
		t.Fatalf("expected min rating 80, got %d", c.Reviews.MinRating)
	}
	if c.Annotator.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", c.Annotator.Timeout)
	}
	if c.Aliases["Tuft & Needle"] != "T&N" {
		t.Fatalf("expected default alias, got %v", c.Aliases)
	}
	if !filepath.IsAbs(c.Corpus.Dir) {
		t.Fatalf("expected corpus dir to be resolved, got %s", c.Corpus.Dir)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	dir := t.TempDir()
	body := strings.TrimSpace(`
corpus:
  dir: results
  workers: 8
resources:
  primary_aspects: res/primary
annotator:
  endpoint: http://tagger:9000/
  timeout: 5s
selection:
  keyword: pillow
  top_k: 5
output:
  dir: /tmp/out
`)
	path := filepath.Join(dir, "aspects.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Corpus.Dir != filepath.Join(dir, "results") {
		t.Fatalf("corpus dir not resolved against config dir: %s", c.Corpus.Dir)
	}
	if c.Corpus.Workers != 8 || c.Corpus.Pattern != "*.parse" {
		t.Fatalf("unexpected corpus config %+v", c.Corpus)
	}
	if c.Resources.PrimaryAspects != filepath.Join(dir, "res", "primary") {
		t.Fatalf("unexpected resource path %s", c.Resources.PrimaryAspects)
	}
	if c.Annotator.Endpoint != "http://tagger:9000" || c.Annotator.Timeout != 5*time.Second {
		t.Fatalf("unexpected annotator config %+v", c.Annotator)
	}
	if c.Selection.Keyword != "pillow" || c.Selection.TopK != 5 {
		t.Fatalf("unexpected selection %+v", c.Selection)
	}
	if c.PairsPath("Casper") != filepath.Join("/tmp/out", "Casper_pairs.jsonl") {
		t.Fatalf("unexpected pairs path %s", c.PairsPath("Casper"))
	}
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"keyword":  "selection:\n  keyword: \"  \"\n",
		"topk":     "selection:\n  top_k: -1\n",
		"tagger":   "annotator:\n  endpoint: \"\"\n  lexicon: \"\"\n",
		"pattern":  "corpus:\n  pattern: \"[\"\n",
		"badyaml":  "corpus: [\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "aspects.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault returned error: %v", err)
	}
	if err := os.WriteFile(path, []byte("selection:\n  keyword: sofa\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Selection.Keyword != "sofa" {
		t.Fatalf("WriteDefault overwrote an existing file")
	}
}
