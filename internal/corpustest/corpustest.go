// Package corpustest materializes txtar archives as on-disk corpora for
// tests.
package corpustest

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// Write extracts archive into a fresh temp dir and returns the dir.
func Write(t testing.TB, archive string) string {
	t.Helper()
	dir := t.TempDir()
	a := txtar.Parse([]byte(archive))
	for _, f := range a.Files {
		p := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// Review is the reference review used across package tests; its clause
// pairs, relations and scoped pairs are known.
const Review = `ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', ['This mattress is very comfortable ,', 'been sleeping great with no pain .']), ParseTree('Elaboration[N][S]', ['I am waiting for hip replacement , could not sleep on my old mattress , to much pain .', 'First night with this mattress , no pain .'])]), ParseTree('Elaboration[N][S]', [ParseTree('Joint[N][N]', ['Had the mattress for a couple weeks', 'and all is good .']), ParseTree('Contrast[S][N]', [ParseTree('Elaboration[N][S]', ['It took the mattress along time to get to the size', 'that it was supposed to be ,']), 'but it got there .'])])]), 'No complaints about this mattress , hopefully this will continue .'])`

// Corpus is a small results directory: one good review, one short review,
// one malformed file, one file with a broken relation and a stray file.
const Corpus = `
-- 1001.txt.parse --
` + Review + `
trailing parser noise
-- 1002.txt.parse --
ParseTree('Contrast[S][N]', ['the smell was strong at first', 'it faded after a day .'])
-- 1003.txt.parse --
ParseTree('Elaboration[N][S]', ['unterminated
-- 1004.txt.parse --
ParseTree('Elaboration[N][S]', ['only one child'])
-- 10010.txt.parse --
ParseTree('Elaboration[N][S]', ['edge support is solid', 'no sagging .'])
-- notes.txt --
not a parse file
`
