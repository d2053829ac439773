package reviews

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `Id,Brand,Title,Text,ReviewRating
101,Casper,Great,"Love this mattress, very firm.",100
102,Tuft & Needle,Ok,"Tuft & Needle shipped fast. Tuft & Needle rocks.",80
103,Casper,Meh,Too soft,60
104,Zinus,Fine,"It smells, at first.",90
101,Casper,Dup,Second row for 101,100
`

func load(t *testing.T) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return tab
}

func TestLoad(t *testing.T) {
	tab := load(t)
	if len(tab.Reviews) != 5 {
		t.Fatalf("expected 5 reviews, got %d", len(tab.Reviews))
	}
	r := tab.Reviews[0]
	if r.ID != "101" || r.Brand != "Casper" || r.Text != "Love this mattress, very firm." || r.Rating != 100 {
		t.Fatalf("unexpected first review %+v", r)
	}
}

func TestReviewIDs(t *testing.T) {
	tab := load(t)
	tests := []struct {
		brand string
		min   float64
		want  []string
	}{
		{"Casper", 80, []string{"101"}},
		{"Casper", 0, []string{"101", "103"}},
		{"Tuft & Needle", 80, []string{"102"}},
		{"Serta", 80, nil},
		{AllBrands, 80, []string{"101", "102", "103", "104"}},
	}
	for _, tc := range tests {
		if got := tab.ReviewIDs(tc.brand, tc.min); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ReviewIDs(%q, %v) = %v, want %v", tc.brand, tc.min, got, tc.want)
		}
	}
}

func TestSuggestBrand(t *testing.T) {
	tab := load(t)
	if got, ok := tab.SuggestBrand("zins"); !ok || got != "Zinus" {
		t.Fatalf("SuggestBrand(zins) = %q, %v", got, ok)
	}
	if _, ok := tab.SuggestBrand("qqq"); ok {
		t.Fatalf("expected no suggestion")
	}
}

func TestAbbreviateBrand(t *testing.T) {
	tests := map[string]string{
		"Tuft & Needle":  "TN",
		"Classic Brands": "CB",
		"Casper":         "Casper",
		"A - B & C":      "ABC",
	}
	for in, want := range tests {
		if got := AbbreviateBrand(in); got != want {
			t.Fatalf("AbbreviateBrand(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteTexts(t *testing.T) {
	tab := load(t)
	dir := filepath.Join(t.TempDir(), "tmp")
	revs := []Review{tab.Reviews[1].Abbreviated(), tab.Reviews[3].Abbreviated()}
	paths, err := WriteTexts(dir, revs)
	if err != nil {
		t.Fatalf("WriteTexts returned error: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "102.txt" {
		t.Fatalf("unexpected paths %v", paths)
	}
	b, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "TN shipped fast. TN rocks." {
		t.Fatalf("brand not abbreviated: %q", b)
	}
	b, _ = os.ReadFile(paths[1])
	if string(b) != "It smells, at first." {
		t.Fatalf("single word brand text changed: %q", b)
	}
}

func TestReadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"empty":   "",
		"columns": "Id,Brand,Text\n1,a,b\n",
		"rating":  "Id,Brand,Text,ReviewRating\n1,a,b,high\n",
	} {
		if _, err := Read(strings.NewReader(body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
