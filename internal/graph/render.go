package graph

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Renderer turns a Graph into an image by piping DOT into the Graphviz binary.
type Renderer struct {
	Binary string // defaults to "dot"
	Format string // defaults to "png"
}

func NewRenderer(binary, format string) *Renderer {
	if binary == "" {
		binary = "dot"
	}
	if format == "" {
		format = "png"
	}
	return &Renderer{Binary: binary, Format: format}
}

// Render writes <outBase>.<format> and returns its path.
func (r *Renderer) Render(ctx context.Context, g *Graph, outBase string) (string, error) {
	out := outBase + "." + r.Format
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, r.Binary, "-T"+r.Format, "-o", out)
	cmd.Stdin = strings.NewReader(ToDOT(g))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("graph: render %s: %w: %s", out, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}
