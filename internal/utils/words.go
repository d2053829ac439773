package utils

import "strings"

// Set builds a membership map from items.
func Set[T comparable](items []T) map[T]bool {
	m := make(map[T]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

// SharesWord reports whether a and b have a whitespace separated word in common.
func SharesWord(a, b string) bool {
	words := Set(strings.Fields(a))
	for _, w := range strings.Fields(b) {
		if words[w] {
			return true
		}
	}
	return false
}

// DropWords removes every word of s found in any of the drop sets.
func DropWords(s string, drop ...map[string]bool) string {
	var kept []string
	for _, w := range strings.Fields(s) {
		if !inAny(w, drop) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Uniq returns items without repeats, keeping first occurrences in order.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}

func inAny(w string, sets []map[string]bool) bool {
	for _, s := range sets {
		if s[w] {
			return true
		}
	}
	return false
}
