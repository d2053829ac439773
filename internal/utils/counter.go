package utils

import "sort"

// Entry is one item of a Counter with its tally.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Counter tallies items and remembers the order they were first seen in.
type Counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func NewCounter[T comparable](items ...T) *Counter[T] {
	c := &Counter[T]{counts: make(map[T]int)}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

func (c *Counter[T]) Add(item T) {
	if _, ok := c.counts[item]; !ok {
		c.order = append(c.order, item)
	}
	c.counts[item]++
}

func (c *Counter[T]) Count(item T) int { return c.counts[item] }

func (c *Counter[T]) Len() int { return len(c.order) }

// MostCommon returns the n most frequent items, ties broken by first-seen
// order. n <= 0 returns every item.
func (c *Counter[T]) MostCommon(n int) []Entry[T] {
	out := make([]Entry[T], 0, len(c.order))
	for _, it := range c.order {
		out = append(out, Entry[T]{Item: it, Count: c.counts[it]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
