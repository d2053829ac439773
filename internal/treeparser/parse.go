package treeparser

import "strings"

const parseTreePrefix = "ParseTree("

// Parse converts one serialized RST tree into a TreeNode.
//
//	Node ::= QuotedString | "ParseTree(" QuotedString "," List ")"
//	List ::= "[" (Node ("," Node)*)? "]"
//
// Quoted strings have no escapes; a string may hold the other quote style.
func Parse(text string) (*TreeNode, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, malformed(text, 0, "empty node")
	}

	if isQuote(s[0]) {
		if len(s) < 2 || s[len(s)-1] != s[0] {
			return nil, malformed(s, 0, "unterminated quoted leaf")
		}
		return &TreeNode{Value: s[1 : len(s)-1]}, nil
	}

	if !strings.HasPrefix(s, parseTreePrefix) {
		return nil, malformed(s, 0, "expected a quoted leaf or ParseTree(")
	}
	label, pos, err := readQuoted(s, skipSpaces(s, len(parseTreePrefix)))
	if err != nil {
		return nil, err
	}
	pos = skipSpaces(s, pos)
	if pos >= len(s) || s[pos] != ',' {
		return nil, malformed(s, pos, "expected ',' after node label")
	}
	if s[len(s)-1] != ')' {
		return nil, malformed(s, len(s)-1, "missing closing ')'")
	}

	children, err := parseList(strings.TrimSpace(s[pos+1 : len(s)-1]))
	if err != nil {
		return nil, err
	}
	return &TreeNode{Value: label, Children: children}, nil
}

func parseList(s string) ([]*TreeNode, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, malformed(s, 0, "expected a bracketed list")
	}
	var nodes []*TreeNode
	cur := 1
	for cur < len(s) && s[cur] != ']' {
		end, err := FindPartEnd(s, cur)
		if err != nil {
			return nil, err
		}
		node, err := Parse(s[cur:end])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		cur = end + 1
	}
	return nodes, nil
}

// FindPartEnd scans s from start and returns the index of the ',' or ']' that
// ends the current list element. Quoted spans are opaque (a quote of the
// other style does not close them) and an unquoted '(' is skipped together
// with everything up to its matching ')'.
func FindPartEnd(s string, start int) (int, error) {
	end := start
	inQuote := false
	var quote byte
	for {
		if end >= len(s) {
			return 0, malformed(s, start, "list element runs past end of input")
		}
		c := s[end]
		if !inQuote && (c == ',' || c == ']') {
			return end, nil
		}
		if isQuote(c) {
			if inQuote && c == quote {
				inQuote = false
			} else if !inQuote {
				quote, inQuote = c, true
			}
		}
		end++
		if end < len(s) && s[end] == '(' && !inQuote {
			closing, err := findMatchingParen(s, end)
			if err != nil {
				return 0, err
			}
			end = closing
		}
	}
}

// findMatchingParen returns the index of the ')' closing the '(' at pos.
// Parentheses inside quoted spans are not counted.
func findMatchingParen(s string, pos int) (int, error) {
	depth := 0
	inQuote := false
	var quote byte
	for i := pos; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			if c == quote {
				inQuote = false
			}
		case isQuote(c):
			quote, inQuote = c, true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, malformed(s, pos, "unbalanced parenthesis")
}

func readQuoted(s string, pos int) (string, int, error) {
	if pos >= len(s) || !isQuote(s[pos]) {
		return "", 0, malformed(s, pos, "expected a quoted label")
	}
	end := strings.IndexByte(s[pos+1:], s[pos])
	if end < 0 {
		return "", 0, malformed(s, pos, "unterminated quoted label")
	}
	end += pos + 1
	return s[pos+1 : end], end + 1, nil
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

func isQuote(c byte) bool { return c == '\'' || c == '"' }
