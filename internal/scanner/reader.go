package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileUnit is one RST parser output file.
type FileUnit struct {
	Filename string // absolute path
	RelPath  string // posix rel path from Root
	ReviewID string // base name up to its first '.'
	Line     string // first line: the serialized tree
}

type SourceReader interface {
	List() ([]FileUnit, error)
}

// ParseFileReader lists the parser output files of a results directory.
type ParseFileReader struct {
	Root       string
	Pattern    string
	ExcludeREs []*regexp.Regexp
	Reviews    map[string]bool // nil keeps every review
	Log        logrus.FieldLogger
}

func NewParseFileReader(root, pattern, excludeCSV string, log logrus.FieldLogger) *ParseFileReader {
	if pattern == "" {
		pattern = "*.parse"
	}
	return &ParseFileReader{
		Root:       root,
		Pattern:    pattern,
		ExcludeREs: compileExcludeRegexes(excludeCSV, log),
		Log:        log,
	}
}

// WithReviews restricts List to the given review ids. Ids are matched
// exactly against ReviewID.
func (r *ParseFileReader) WithReviews(ids []string) *ParseFileReader {
	r.Reviews = make(map[string]bool, len(ids))
	for _, id := range ids {
		r.Reviews[id] = true
	}
	return r
}

func (r *ParseFileReader) List() ([]FileUnit, error) {
	root, err := filepath.Abs(r.Root)
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("scanner: %s is not a directory", root)
	}
	matches, err := filepath.Glob(filepath.Join(root, r.Pattern))
	if err != nil {
		return nil, fmt.Errorf("scanner: pattern %q: %w", r.Pattern, err)
	}

	var out []FileUnit
	for _, fn := range matches {
		rel := relPosix(root, fn)
		if shouldExclude(rel, r.ExcludeREs) {
			continue
		}
		id := ReviewID(fn)
		if r.Reviews != nil && !r.Reviews[id] {
			continue
		}
		line, err := readFirstLine(fn)
		if err != nil {
			r.Log.WithField("file", rel).WithError(err).Warn("unreadable parse file, skipped")
			continue
		}
		out = append(out, FileUnit{
			Filename: fn,
			RelPath:  rel,
			ReviewID: id,
			Line:     line,
		})
	}
	r.Log.WithFields(logrus.Fields{"root": root, "files": len(out)}).Debug("parse files listed")
	return out, nil
}

// ReviewID is the base name of path up to its first '.':
// "results/1234.txt.parse" -> "1234".
func ReviewID(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

func readFirstLine(fn string) (string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line, _, _ = strings.Cut(normalizeNewlines(line), "\n")
	return strings.TrimSpace(line), nil
}

// --- helpers (shared) ---

func compileExcludeRegexes(csv string, log logrus.FieldLogger) []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, p := range splitCSV(csv) {
		re, err := regexp.Compile(p)
		if err != nil {
			log.WithField("pattern", p).WithError(err).Warn("bad exclude pattern ignored")
			continue
		}
		res = append(res, re)
	}
	return res
}

func shouldExclude(rel string, res []*regexp.Regexp) bool {
	for _, r := range res {
		if r.MatchString(rel) {
			return true
		}
	}
	return false
}

func relPosix(root, filename string) string {
	rel, err := filepath.Rel(root, filename)
	if err != nil {
		return toPosix(filename)
	}
	return toPosix(rel)
}

func toPosix(p string) string { return strings.ReplaceAll(p, string(filepath.Separator), "/") }

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
