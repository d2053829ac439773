package stream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type row struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestEmitterReaderRoundTrip(t *testing.T) {
	for _, name := range []string{"rows.jsonl", "rows.jsonl.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)
			rows := []row{{"a", 1}, {"b", 2}, {"c", 3}}

			je := NewJSONLEmitter[row](path, nil, true, Truncate())
			if err := je.Emit(rows); err != nil {
				t.Fatalf("Emit returned error: %v", err)
			}
			if err := je.Close(); err != nil {
				t.Fatalf("Close returned error: %v", err)
			}

			jr, err := NewJSONLReader[row](path, nil)
			if err != nil {
				t.Fatalf("NewJSONLReader returned error: %v", err)
			}
			defer jr.Close()
			got, err := jr.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll returned error: %v", err)
			}
			if !reflect.DeepEqual(got, rows) {
				t.Fatalf("ReadAll = %+v, want %+v", got, rows)
			}
		})
	}
}

func TestEmitterAppendsByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.jsonl")
	for i := 0; i < 2; i++ {
		je := NewJSONLEmitter[row](path, nil, false)
		if err := je.EmitOne(row{ID: "x", Count: i}); err != nil {
			t.Fatal(err)
		}
		if err := je.Close(); err != nil {
			t.Fatal(err)
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "\n"); n != 2 {
		t.Fatalf("expected 2 lines after two runs, got %d:\n%s", n, b)
	}
}

func TestReaderSkipsCommentsAndReportsLine(t *testing.T) {
	in := "# Run at now\n{\"id\":\"a\",\"count\":1}\n\n{\"id\":\"b\",\"count\":2}"
	jr := NewJSONLReaderFrom[row]("mem", io.NopCloser(strings.NewReader(in)), nil)
	got, err := jr.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].ID != "b" {
		t.Fatalf("unexpected rows %+v", got)
	}

	bad := NewJSONLReaderFrom[row]("mem", io.NopCloser(strings.NewReader("{\"id\":\"a\"}\nnot json\n")), nil)
	_, err = bad.ReadAll()
	var le *LineError
	if !errors.As(err, &le) || le.Line != 2 || !strings.Contains(err.Error(), "mem:2") {
		t.Fatalf("expected error naming line 2, got %v", err)
	}
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	in := "{\"id\":\"" + long + "\",\"count\":7}\n"
	jr := NewJSONLReaderFrom[row]("mem", io.NopCloser(strings.NewReader(in)), nil)
	got, err := jr.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].ID) != len(long) || got[0].Count != 7 {
		t.Fatalf("long record not decoded")
	}
}
