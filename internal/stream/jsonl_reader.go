package stream

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLine bounds a single record. Records carrying a rendered RST graph can
// be far longer than bufio's 64KiB default.
const maxLine = 8 << 20

// DecoderFunc converts a JSONL line (bytes) into a value of type T.
type DecoderFunc[T any] func([]byte) (T, error)

// LineError reports a record that could not be decoded.
type LineError struct {
	Name string
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

var _ Reader[struct{}] = (*JSONLReader[struct{}])(nil)

// JSONLReader yields one T per non-empty line. Lines starting with '#' (the
// emitter's run header) are skipped.
type JSONLReader[T any] struct {
	name   string
	rc     io.ReadCloser
	sc     *bufio.Scanner
	decode DecoderFunc[T]
	lineNo int
}

// NewJSONLReader opens path; "" reads stdin. decode == nil uses json.Unmarshal.
func NewJSONLReader[T any](path string, decode DecoderFunc[T]) (*JSONLReader[T], error) {
	if path == "" {
		return NewJSONLReaderFrom("stdin", io.NopCloser(os.Stdin), decode), nil
	}
	rc, err := openInput(path)
	if err != nil {
		return nil, err
	}
	return NewJSONLReaderFrom(path, rc, decode), nil
}

// NewJSONLReaderFrom reads JSONL from an already open stream; name is only
// used in error messages.
func NewJSONLReaderFrom[T any](name string, rc io.ReadCloser, decode DecoderFunc[T]) *JSONLReader[T] {
	if decode == nil {
		decode = func(b []byte) (T, error) {
			var v T
			err := json.Unmarshal(b, &v)
			return v, err
		}
	}
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &JSONLReader[T]{name: name, rc: rc, sc: sc, decode: decode}
}

func (r *JSONLReader[T]) Close() error {
	if r == nil || r.rc == nil {
		return nil
	}
	return r.rc.Close()
}

func (r *JSONLReader[T]) Next() (T, bool, error) {
	var zero T
	for r.sc.Scan() {
		r.lineNo++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := r.decode([]byte(line))
		if err != nil {
			return zero, false, &LineError{Name: r.name, Line: r.lineNo, Err: err}
		}
		return v, true, nil
	}
	if err := r.sc.Err(); err != nil {
		return zero, false, fmt.Errorf("%s: %w", r.name, err)
	}
	return zero, false, nil
}

func (r *JSONLReader[T]) ReadAll() ([]T, error) {
	var out []T
	for {
		v, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

func isGzip(path string) bool { return strings.EqualFold(filepath.Ext(path), ".gz") }

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(path) {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gzipFile{Reader: gz, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}
