package resources

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		body string
		want []string
	}{
		{"smell\nedge support\nprice\n", []string{"smell", "edge support", "price"}},
		{"smell\r\nfoam", []string{"smell", "foam"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"", nil},
	}
	for i, tc := range tests {
		path := write(t, dir, "list"+string(rune('a'+i)), tc.body)
		got, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines returned error: %v", err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ReadLines(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := Paths{
		PrimaryAspects:  write(t, dir, "primary_aspects", "smell\nfirmness\n"),
		NotCaredAspects: write(t, dir, "not_cared_aspects", "thing\n"),
		Relations:       write(t, dir, "relations", "Elaboration\nContrast\n"),
		Determiners:     write(t, dir, "determiners", "the\na\n"),
	}
	w, err := Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(w.PrimaryAspects) != 2 || w.Relations[1] != "Contrast" || w.Determiners[0] != "the" {
		t.Fatalf("unexpected wordlists %+v", w)
	}

	p.Determiners = filepath.Join(dir, "missing")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for a missing wordlist")
	}
}
