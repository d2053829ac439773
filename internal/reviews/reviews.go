// Package reviews reads the product review table and prepares review text
// for the external RST parser.
package reviews

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// AllBrands selects every review regardless of brand and rating.
const AllBrands = "All"

var requiredColumns = []string{"Id", "Brand", "Text", "ReviewRating"}

type Review struct {
	ID     string
	Brand  string
	Text   string
	Rating float64
}

type Table struct {
	Path    string
	Reviews []Review
}

// Load reads a CSV file with at least the Id, Brand, Text and ReviewRating
// columns. Other columns are ignored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}
	defer f.Close()
	revs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reviews: %s: %w", path, err)
	}
	return &Table{Path: path, Reviews: revs}, nil
}

func Read(r io.Reader) ([]Review, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var out []Review
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		field := func(name string) string {
			if i := col[name]; i < len(row) {
				return row[i]
			}
			return ""
		}
		rating, err := parseRating(field("ReviewRating"))
		if err != nil {
			return nil, fmt.Errorf("line %d: rating: %w", line, err)
		}
		out = append(out, Review{
			ID:     strings.TrimSpace(field("Id")),
			Brand:  field("Brand"),
			Text:   field("Text"),
			Rating: rating,
		})
	}
	return out, nil
}

func parseRating(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ReviewIDs lists the ids of brand's reviews rated at least minRating, in
// table order. AllBrands returns every id and ignores the rating.
func (t *Table) ReviewIDs(brand string, minRating float64) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, r := range t.Reviews {
		if brand != AllBrands && (r.Brand != brand || r.Rating < minRating) {
			continue
		}
		if !seen[r.ID] {
			seen[r.ID] = true
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Brands lists the distinct brands in table order.
func (t *Table) Brands() []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range t.Reviews {
		if !seen[r.Brand] {
			seen[r.Brand] = true
			out = append(out, r.Brand)
		}
	}
	return out
}

// SuggestBrand returns the known brand closest to name, if any matches.
func (t *Table) SuggestBrand(name string) (string, bool) {
	matches := fuzzy.Find(name, t.Brands())
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// AbbreviateBrand turns a multi word brand into the initials of its words,
// skipping words that are a single punctuation mark: "Tuft & Needle" -> "TN".
// One word brands are returned unchanged.
func AbbreviateBrand(brand string) string {
	words := strings.Fields(brand)
	if len(words) <= 1 {
		return brand
	}
	var b strings.Builder
	for _, w := range words {
		if len(w) == 1 && strings.ContainsAny(w, punctuation) {
			continue
		}
		b.WriteByte(w[0])
	}
	return b.String()
}

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Abbreviated returns r with every mention of a multi word brand replaced by
// its abbreviation, so the RST parser sees the brand as a single token.
func (r Review) Abbreviated() Review {
	if abbr := AbbreviateBrand(r.Brand); abbr != r.Brand {
		r.Text = strings.ReplaceAll(r.Text, r.Brand, abbr)
	}
	return r
}

// WriteTexts writes one <id>.txt per review into dir and returns the paths
// written.
func WriteTexts(dir string, revs []Review) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}
	paths := make([]string, 0, len(revs))
	for _, r := range revs {
		if r.ID == "" {
			return paths, fmt.Errorf("reviews: review without id")
		}
		p := filepath.Join(dir, r.ID+".txt")
		if err := os.WriteFile(p, []byte(r.Text), 0o644); err != nil {
			return paths, fmt.Errorf("reviews: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
