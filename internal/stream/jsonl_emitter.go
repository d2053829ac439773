package stream

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// EmitterOption tweaks a JSONLEmitter.
type EmitterOption func(*emitterOptions)

type emitterOptions struct {
	truncate bool
}

// Truncate replaces an existing output file instead of appending to it.
func Truncate() EmitterOption {
	return func(o *emitterOptions) { o.truncate = true }
}

var _ Emitter[struct{}] = (*JSONLEmitter[struct{}])(nil)

// JSONLEmitter writes one JSON object per line (JSONL). Paths ending in .gz
// are gzip compressed. The file is opened on the first write.
type JSONLEmitter[T any] struct {
	outPath      string
	encode       EncoderFunc[T]
	addRunHeader bool
	opts         emitterOptions

	w       *bufio.Writer
	closers []io.Closer
}

// NewJSONLEmitter creates a JSONLEmitter with a fixed output path.
// outPath == "" → os.Stdout. If encode is nil, it falls back to json.Marshal.
func NewJSONLEmitter[T any](outPath string, encode EncoderFunc[T], addRunHeader bool, opts ...EmitterOption) *JSONLEmitter[T] {
	if encode == nil {
		encode = func(v T) ([]byte, error) { return json.Marshal(v) }
	}
	je := &JSONLEmitter[T]{
		outPath:      outPath,
		encode:       encode,
		addRunHeader: addRunHeader,
	}
	for _, o := range opts {
		o(&je.opts)
	}
	return je
}

// Emit writes a slice of records.
func (je *JSONLEmitter[T]) Emit(records []T) error {
	for _, rec := range records {
		if err := je.EmitOne(rec); err != nil {
			return err
		}
	}
	return nil
}

// EmitOne writes a single record.
func (je *JSONLEmitter[T]) EmitOne(record T) error {
	if err := je.open(); err != nil {
		return err
	}
	b, err := je.encode(record)
	if err != nil {
		return err
	}
	if _, err := je.w.Write(b); err != nil {
		return err
	}
	return je.w.WriteByte('\n')
}

// Close flushes buffered lines and releases the file.
func (je *JSONLEmitter[T]) Close() error {
	if je.w == nil {
		return nil
	}
	err := je.w.Flush()
	for i := len(je.closers) - 1; i >= 0; i-- {
		if cerr := je.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	je.w, je.closers = nil, nil
	return err
}

// Open creates the output eagerly, so a run without records still leaves a
// (header only) file behind.
func (je *JSONLEmitter[T]) Open() error { return je.open() }

func (je *JSONLEmitter[T]) open() error {
	if je.w != nil {
		return nil
	}
	var out io.Writer = os.Stdout
	if je.outPath != "" {
		if err := os.MkdirAll(filepath.Dir(je.outPath), 0o755); err != nil {
			return err
		}
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if je.opts.truncate {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
		f, err := os.OpenFile(je.outPath, flags, 0o644)
		if err != nil {
			return err
		}
		je.closers = append(je.closers, f)
		out = f
		if isGzip(je.outPath) {
			gz := gzip.NewWriter(f)
			je.closers = append(je.closers, gz)
			out = gz
		}
	}
	je.w = bufio.NewWriter(out)

	if je.addRunHeader {
		header := fmt.Sprintf("# Run at %s\n", time.Now().Format(time.RFC3339))
		if _, err := je.w.WriteString(header); err != nil {
			return err
		}
		je.addRunHeader = false
	}
	return nil
}
