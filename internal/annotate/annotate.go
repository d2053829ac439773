// Package annotate finds noun chunks in clause text. The tagging itself is
// done by an external NLP service or, offline, by a phrase lexicon.
package annotate

import (
	"context"
	"strings"
)

// Annotator returns the noun chunks of each text, aligned with texts.
type Annotator interface {
	NounChunks(ctx context.Context, texts []string) ([][]string, error)
}

var pronouns = map[string]bool{
	"I": true, "i": true, "Me": true, "me": true, "You": true, "you": true,
	"They": true, "they": true, "He": true, "he": true, "She": true, "she": true,
	"her": true, "him": true, "It": true, "it": true, "We": true, "we": true,
	"us": true,
}

// FilterPronouns drops chunks made of a single pronoun token. Multi token
// chunks are kept whatever they contain.
func FilterPronouns(chunks []string) []string {
	out := chunks[:0:0]
	for _, c := range chunks {
		fields := strings.Fields(c)
		if len(fields) == 1 && pronouns[fields[0]] {
			continue
		}
		out = append(out, c)
	}
	return out
}
