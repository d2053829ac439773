package treeparser

import (
	"errors"
	"reflect"
	"testing"
)

const reviewTree = `ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', [ParseTree('Elaboration[N][S]', ['This mattress is very comfortable ,', 'been sleeping great with no pain .']), ParseTree('Elaboration[N][S]', ['I am waiting for hip replacement , could not sleep on my old mattress , to much pain .', 'First night with this mattress , no pain .'])]), ParseTree('Elaboration[N][S]', [ParseTree('Joint[N][N]', ['Had the mattress for a couple weeks', 'and all is good .']), ParseTree('Contrast[S][N]', [ParseTree('Elaboration[N][S]', ['It took the mattress along time to get to the size', 'that it was supposed to be ,']), 'but it got there .'])])]), 'No complaints about this mattress , hopefully this will continue .'])`

func TestFindPartEnd(t *testing.T) {
	tests := []struct {
		in    string
		start int
		want  int
	}{
		{`['123']`, 0, 6},
		{`['1,3']`, 0, 6},
		{`['1]3']`, 0, 6},
		{`['1"3']`, 0, 6},
		{`['123', '123']`, 0, 6},
		{`['123', '123']`, 7, 13},
		{`["123"]`, 0, 6},
		{`["1,3"]`, 0, 6},
		{`["1]3"]`, 0, 6},
		{`["1'3"]`, 0, 6},
		{`['(a', 'b)']`, 1, 5},
		{`[ParseTree('A[N][S]', ['x', 'y']), 'z']`, 1, 33},
	}
	for _, tc := range tests {
		got, err := FindPartEnd(tc.in, tc.start)
		if err != nil {
			t.Fatalf("FindPartEnd(%q, %d) returned error: %v", tc.in, tc.start, err)
		}
		if got != tc.want {
			t.Fatalf("FindPartEnd(%q, %d) = %d, want %d", tc.in, tc.start, got, tc.want)
		}
	}
}

func TestFindPartEndTruncated(t *testing.T) {
	for _, in := range []string{`['abc`, `['abc'`, `[ParseTree('A', ['x'`} {
		_, err := FindPartEnd(in, 1)
		var mt *MalformedTreeError
		if !errors.As(err, &mt) {
			t.Fatalf("FindPartEnd(%q) error = %v, want MalformedTreeError", in, err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		label    string
		children []string
	}{
		{`ParseTree('Elaboration[N][S]', ['asdf', 'sadf'])`, "Elaboration[N][S]", []string{"asdf", "sadf"}},
		{`ParseTree('Elaboration[N][S]', ["sad's toy", 'sadf'])`, "Elaboration[N][S]", []string{"sad's toy", "sadf"}},
		{`ParseTree('Joint[N][N]', ['( I am @ 170lbs', 'and my wife is pregnant @ around 140lbs ) .'])`, "Joint[N][N]", []string{"( I am @ 170lbs", "and my wife is pregnant @ around 140lbs ) ."}},
		{`  ParseTree('Joint[N][N]', [])  `, "Joint[N][N]", nil},
	}
	for _, tc := range tests {
		root, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if root.Value != tc.label {
			t.Fatalf("Parse(%q) label = %q, want %q", tc.in, root.Value, tc.label)
		}
		var got []string
		for _, c := range root.Children {
			got = append(got, c.Value)
		}
		if !reflect.DeepEqual(got, tc.children) {
			t.Fatalf("Parse(%q) children = %q, want %q", tc.in, got, tc.children)
		}
	}
}

func TestParseRelationName(t *testing.T) {
	root, err := Parse(`ParseTree('Elaboration[N][S]', ['asdf', 'sadf'])`)
	if err != nil {
		t.Fatal(err)
	}
	if got := RelationName(root.Value); got != "Elaboration" {
		t.Fatalf("RelationName = %q, want Elaboration", got)
	}
	if len(root.Children) != 2 || root.Children[0].Value != "asdf" || root.Children[1].Value != "sadf" {
		t.Fatalf("unexpected children: %+v", root.Children)
	}
}

func TestParseLeaf(t *testing.T) {
	root, err := Parse(`'but it got there .'`)
	if err != nil {
		t.Fatal(err)
	}
	if root.Value != "but it got there ." || len(root.Children) != 0 {
		t.Fatalf("unexpected leaf: %+v", root)
	}
}

func TestParseNested(t *testing.T) {
	root, err := Parse(reviewTree)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children at root, got %d", len(root.Children))
	}
	contrast := FindByValue(root, "Contrast[S][N]")
	if contrast == nil {
		t.Fatalf("Contrast node not found")
	}
	if contrast.Children[1].Value != "but it got there ." {
		t.Fatalf("unexpected contrast satellite %q", contrast.Children[1].Value)
	}
}

func TestParseMalformed(t *testing.T) {
	inputs := []string{
		"",
		"'unterminated",
		`"mixed'`,
		"Tree('A[N][S]', ['a', 'b'])",
		"ParseTree('A[N][S]' ['a', 'b'])",
		"ParseTree('A[N][S]', ['a', 'b']",
		"ParseTree('A[N][S]', 'a', 'b')",
		"ParseTree('A[N][S]', ['a', 'b)",
		"ParseTree('A[N][S]', ['a', ])",
		"ParseTree('A[N][S], ['a', 'b'])",
		"ParseTree('A[N][S]', [ParseTree('B[N][S]', ['a', 'b'], 'c'])",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var mt *MalformedTreeError
		if !errors.As(err, &mt) {
			t.Fatalf("Parse(%q) error = %v, want MalformedTreeError", in, err)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	trees := []*TreeNode{
		NewNode("leaf only"),
		NewNode("Elaboration[N][S]", NewNode("a, b ] c"), NewNode("it's (fine")),
		NewNode("Contrast[S][N]",
			NewNode("Joint[N][N]", NewNode(`say "hi"`), NewNode("( open")),
			NewNode("Elaboration[N][S]", NewNode("close )"), NewNode("[x]")),
		),
	}
	for _, tree := range trees {
		text, err := Render(tree)
		if err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", text, err)
		}
		if !reflect.DeepEqual(got, tree) {
			t.Fatalf("round trip mismatch for %q:\n got %s\nwant %s", text, Pretty(got), Pretty(tree))
		}
	}
}

func TestRenderRejectsBothQuotes(t *testing.T) {
	if _, err := Render(NewNode(`it's "both"`)); err == nil {
		t.Fatalf("expected error for text holding both quote styles")
	}
}
