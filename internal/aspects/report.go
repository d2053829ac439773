package aspects

import (
	"fmt"
	"io"

	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

// ReportEntry is one review of the analysis report.
type ReportEntry struct {
	Selected
	Cleaned []model.AspectPair
}

// Report strips determiners and not-cared words from both sides of every
// selected pair and keeps the pairs that stay non-empty and share no word.
func Report(sel []Selected, w *resources.Wordlists) []ReportEntry {
	dets := utils.Set(w.Determiners)
	nc := utils.Set(w.NotCaredAspects)
	out := make([]ReportEntry, 0, len(sel))
	for _, s := range sel {
		e := ReportEntry{Selected: s}
		for _, p := range s.Pairs {
			x := utils.DropWords(p.Parent, dets, nc)
			y := utils.DropWords(p.Child, dets, nc)
			if x == "" || y == "" || utils.SharesWord(x, y) {
				continue
			}
			e.Cleaned = append(e.Cleaned, model.AspectPair{Parent: x, Child: y})
		}
		out = append(out, e)
	}
	return out
}

// WriteReport prints the report in a reviewer friendly text layout.
func WriteReport(w io.Writer, entries []ReportEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "review id: %s\n", e.ReviewID); err != nil {
			return err
		}
		for _, c := range e.Clauses {
			if _, err := fmt.Fprintf(w, "  clause: %q -> %q\n", c.First, c.Second); err != nil {
				return err
			}
		}
		for _, p := range e.Cleaned {
			if _, err := fmt.Fprintf(w, "  aspect pair: %s\n", p); err != nil {
				return err
			}
		}
	}
	return nil
}
