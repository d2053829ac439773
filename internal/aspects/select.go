package aspects

import (
	"strings"

	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
	"github.com/vd09-projects/rst-aspect-miner/internal/treeparser"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

// DefaultTopK is how many of the most frequent secondary pairs pick the
// secondary aspects that are kept.
const DefaultTopK = 20

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Selected is the outcome of RelationBased for one review.
type Selected struct {
	ReviewID string
	Clauses  []treeparser.Pair  // clause pairs that yielded at least one pair
	Pairs    []model.AspectPair // lower-cased
}

// RelationBased keeps the crossed noun chunk pairs (x, y) where
//   - x is a primary aspect, or exactly one word of x is,
//   - y does not contain the keyword as a word,
//   - x and y share no word.
//
// Reviews without any kept pair are dropped.
func RelationBased(cands []Candidates, primary []string, keyword string) []Selected {
	prim := utils.Set(primary)
	keyword = strings.ToLower(keyword)
	var out []Selected
	for _, c := range cands {
		sel := Selected{ReviewID: c.ReviewID}
		for _, cp := range c.Pairs {
			clauseSet := false
			for _, p := range CrossPairs(cp) {
				x, y := strings.ToLower(p.Parent), strings.ToLower(p.Child)
				if !isPrimary(p.Parent, x, prim) {
					continue
				}
				if utils.Set(strings.Fields(y))[keyword] || utils.SharesWord(x, y) {
					continue
				}
				if !clauseSet {
					sel.Clauses = append(sel.Clauses, cp.Clause)
					clauseSet = true
				}
				sel.Pairs = append(sel.Pairs, model.AspectPair{Parent: x, Child: y})
			}
		}
		if len(sel.Pairs) > 0 {
			out = append(out, sel)
		}
	}
	return out
}

func isPrimary(raw, lower string, prim map[string]bool) bool {
	if prim[raw] {
		return true
	}
	n := 0
	for _, w := range strings.Fields(lower) {
		if prim[w] {
			n++
		}
	}
	return n == 1
}

// PrimaryPairs links root to every primary aspect, in list order.
func PrimaryPairs(root string, primary []string) []model.AspectPair {
	out := make([]model.AspectPair, 0, len(primary))
	for _, a := range primary {
		out = append(out, model.AspectPair{Parent: root, Child: a})
	}
	return utils.Uniq(out)
}

// SecondaryPairs condenses selected pairs into (primary aspect, secondary
// aspect) pairs. The parent becomes the primary aspect found in x; the child
// is y without determiners, not-cared words and punctuation. Only pairs whose
// child is among the children of the topK most frequent pairs survive.
// The result has no repeats and keeps first-seen order.
func SecondaryPairs(sel []Selected, w *resources.Wordlists, topK int) []model.AspectPair {
	if topK <= 0 {
		topK = DefaultTopK
	}
	prim := utils.Set(w.PrimaryAspects)
	dets := utils.Set(w.Determiners)
	ignore := utils.Set(w.NotCaredAspects)
	for _, r := range punctuation {
		ignore[string(r)] = true
	}

	var pairs []model.AspectPair
	for _, s := range sel {
		for _, p := range s.Pairs {
			x, ok := primaryOf(p.Parent, prim)
			if !ok {
				continue
			}
			y := utils.DropWords(strings.ToLower(p.Child), dets, ignore)
			if y == "" || prim[y] || ignore[y] {
				continue
			}
			pairs = append(pairs, model.AspectPair{Parent: x, Child: y})
		}
	}

	counts := utils.NewCounter(pairs...)
	top := make(map[string]bool)
	for _, e := range counts.MostCommon(topK) {
		top[e.Item.Child] = true
	}
	var out []model.AspectPair
	for _, p := range pairs {
		if top[p.Child] {
			out = append(out, p)
		}
	}
	return utils.Uniq(out)
}

func primaryOf(x string, prim map[string]bool) (string, bool) {
	if prim[x] {
		return x, true
	}
	for _, w := range strings.Fields(strings.ToLower(x)) {
		if prim[w] {
			return w, true
		}
	}
	return "", false
}
