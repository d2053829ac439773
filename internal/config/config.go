// Package config loads the YAML run configuration shared by the commands.
// A missing file means "use the defaults"; relative paths are resolved
// against the directory holding the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
)

// DefaultYAML is written by WriteDefault and doubles as the built-in defaults.
const DefaultYAML = `# rst-aspect-miner configuration
corpus:
  # directory holding the RST parser output, one <review id>.txt.parse per review
  dir: ../feng-hirst-rst-parser/results
  pattern: "*.parse"
  # comma-separated regexes of file names to leave out
  exclude: ""
  workers: 4

reviews:
  file: ../data/review/sample_data.csv
  min_rating: 80
  text_dir: ../feng-hirst-rst-parser/tmp

resources:
  primary_aspects: ../data/resources/primary_aspects
  not_cared_aspects: ../data/resources/not_cared_aspects
  relations: ../data/resources/relations
  determiners: ../data/resources/determiners

annotator:
  # noun chunk service; leave empty and set lexicon to tag offline
  endpoint: http://localhost:8000
  timeout: 30s
  lexicon: ""

# multi word brand names rewritten before tagging
aliases:
  "Tuft & Needle": "T&N"

selection:
  keyword: mattress
  top_k: 20

output:
  dir: ../data/brand
  graphs: ""
  figures: ../figs

graphviz:
  binary: dot
  format: png
`

type CorpusConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
	Exclude string `yaml:"exclude"`
	Workers int    `yaml:"workers"`
}

type ReviewsConfig struct {
	File      string `yaml:"file"`
	MinRating int    `yaml:"min_rating"`
	TextDir   string `yaml:"text_dir"`
}

type AnnotatorConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	Lexicon  string        `yaml:"lexicon,omitempty"`
}

type SelectionConfig struct {
	Keyword string `yaml:"keyword"`
	TopK    int    `yaml:"top_k"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Graphs  string `yaml:"graphs,omitempty"` // per review RST graphs; empty disables them
	Figures string `yaml:"figures"`
}

type GraphvizConfig struct {
	Binary string `yaml:"binary"`
	Format string `yaml:"format"`
}

// Config models the whole configuration file.
type Config struct {
	Corpus    CorpusConfig      `yaml:"corpus"`
	Reviews   ReviewsConfig     `yaml:"reviews"`
	Resources resources.Paths   `yaml:"resources"`
	Annotator AnnotatorConfig   `yaml:"annotator"`
	Aliases   map[string]string `yaml:"aliases"`
	Selection SelectionConfig   `yaml:"selection"`
	Output    OutputConfig      `yaml:"output"`
	Graphviz  GraphvizConfig    `yaml:"graphviz"`
}

// Default returns the built-in configuration with paths left relative.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal([]byte(DefaultYAML), &c); err != nil {
		panic(fmt.Sprintf("config: built-in defaults do not parse: %v", err))
	}
	return &c
}

// Load reads path over the defaults. path == "" or a missing file yields the
// defaults resolved against the working directory.
func Load(path string) (*Config, error) {
	c := Default()
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
			base = filepath.Dir(abs)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	c.applyDefaults()
	c.normalize(base)
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// WriteDefault writes DefaultYAML to path unless a file is already there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultYAML), 0o644)
}

// PairsPath is where the aspect pairs of brand are stored.
func (c *Config) PairsPath(brand string) string {
	return filepath.Join(c.Output.Dir, brand+"_pairs.jsonl")
}

func (c *Config) applyDefaults() {
	if c.Corpus.Pattern == "" {
		c.Corpus.Pattern = "*.parse"
	}
	if c.Corpus.Workers <= 0 {
		c.Corpus.Workers = 1
	}
	if c.Annotator.Timeout <= 0 {
		c.Annotator.Timeout = 30 * time.Second
	}
	if c.Graphviz.Binary == "" {
		c.Graphviz.Binary = "dot"
	}
	if c.Graphviz.Format == "" {
		c.Graphviz.Format = "png"
	}
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
}

func (c *Config) normalize(base string) {
	for _, p := range []*string{
		&c.Corpus.Dir,
		&c.Reviews.File,
		&c.Reviews.TextDir,
		&c.Resources.PrimaryAspects,
		&c.Resources.NotCaredAspects,
		&c.Resources.Relations,
		&c.Resources.Determiners,
		&c.Annotator.Lexicon,
		&c.Output.Dir,
		&c.Output.Graphs,
		&c.Output.Figures,
	} {
		*p = resolvePath(base, *p)
	}
	c.Annotator.Endpoint = strings.TrimRight(strings.TrimSpace(c.Annotator.Endpoint), "/")
	c.Selection.Keyword = strings.TrimSpace(c.Selection.Keyword)
}

func (c *Config) validate() error {
	if c.Corpus.Dir == "" {
		return fmt.Errorf("corpus.dir is required")
	}
	if _, err := filepath.Match(c.Corpus.Pattern, ""); err != nil {
		return fmt.Errorf("corpus.pattern: %w", err)
	}
	if c.Annotator.Endpoint == "" && c.Annotator.Lexicon == "" {
		return fmt.Errorf("annotator needs an endpoint or a lexicon")
	}
	if c.Selection.Keyword == "" {
		return fmt.Errorf("selection.keyword is required")
	}
	if c.Selection.TopK < 0 {
		return fmt.Errorf("selection.top_k must be >= 0")
	}
	if c.Reviews.MinRating < 0 {
		return fmt.Errorf("reviews.min_rating must be >= 0")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
