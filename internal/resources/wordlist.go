// Package resources loads the newline-delimited wordlists that steer aspect
// selection.
package resources

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines returns the lines of a wordlist in file order. Lines are not
// trimmed or deduplicated; a trailing newline does not add an empty entry.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

// Paths names the wordlist files of one run.
type Paths struct {
	PrimaryAspects  string `yaml:"primary_aspects"`
	NotCaredAspects string `yaml:"not_cared_aspects"`
	Relations       string `yaml:"relations"`
	Determiners     string `yaml:"determiners"`
}

// Wordlists holds the loaded resources.
type Wordlists struct {
	PrimaryAspects  []string
	NotCaredAspects []string
	Relations       []string
	Determiners     []string
}

// Load reads every wordlist named in p. Any missing file fails the load.
func Load(p Paths) (*Wordlists, error) {
	var w Wordlists
	for _, item := range []struct {
		path string
		dst  *[]string
	}{
		{p.PrimaryAspects, &w.PrimaryAspects},
		{p.NotCaredAspects, &w.NotCaredAspects},
		{p.Relations, &w.Relations},
		{p.Determiners, &w.Determiners},
	} {
		lines, err := ReadLines(item.path)
		if err != nil {
			return nil, err
		}
		*item.dst = lines
	}
	return &w, nil
}
