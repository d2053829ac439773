package treeparser

import "fmt"

// MalformedTreeError reports a serialized tree that does not follow the
// ParseTree grammar. Offset is relative to the text handed to the failing
// parse step.
type MalformedTreeError struct {
	Offset int
	Reason string
	Input  string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("treeparser: malformed tree at offset %d: %s (input %q)", e.Offset, e.Reason, clip(e.Input, 60))
}

func malformed(input string, offset int, reason string) *MalformedTreeError {
	return &MalformedTreeError{Offset: offset, Reason: reason, Input: input}
}

// ArityError reports a relation node that does not have exactly two children.
// The RST grammar only produces binary relation nodes, so this always means a
// parser or input bug.
type ArityError struct {
	Label    string
	Children int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("treeparser: relation node %q needs two sub trees, has %d", e.Label, e.Children)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
