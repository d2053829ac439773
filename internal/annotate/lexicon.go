package annotate

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
)

// Lexicon tags the phrases of a fixed list. At each position the longest
// phrase wins; matches do not overlap and are reported in text order with
// the text's own spelling. Matching is case-insensitive on whole words.
type Lexicon struct {
	phrases [][]string
}

func NewLexicon(phrases []string) *Lexicon {
	l := &Lexicon{}
	fold := cases.Fold()
	for _, p := range phrases {
		words := strings.Fields(p)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = fold.String(w)
		}
		l.phrases = append(l.phrases, words)
	}
	return l
}

// LoadLexicon reads one phrase per line from path.
func LoadLexicon(path string) (*Lexicon, error) {
	lines, err := resources.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return NewLexicon(lines), nil
}

func (l *Lexicon) NounChunks(ctx context.Context, texts []string) ([][]string, error) {
	out := make([][]string, len(texts))
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = FilterPronouns(l.chunks(t))
	}
	return out, nil
}

func (l *Lexicon) chunks(text string) []string {
	fold := cases.Fold()
	tokens := strings.Fields(text)
	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		keys[i] = fold.String(strings.TrimFunc(tok, unicode.IsPunct))
	}
	var out []string
	for i := 0; i < len(tokens); {
		n := l.longestAt(keys, i)
		if n == 0 {
			i++
			continue
		}
		words := make([]string, n)
		for j := range words {
			words[j] = strings.TrimFunc(tokens[i+j], unicode.IsPunct)
		}
		out = append(out, strings.Join(words, " "))
		i += n
	}
	return out
}

func (l *Lexicon) longestAt(keys []string, at int) int {
	best := 0
	for _, p := range l.phrases {
		if len(p) <= best || at+len(p) > len(keys) {
			continue
		}
		match := true
		for j, w := range p {
			if keys[at+j] != w {
				match = false
				break
			}
		}
		if match {
			best = len(p)
		}
	}
	return best
}
