// Package pairstore persists aspect pair collections as JSONL, one
// ["parent","child"] array per line. Paths ending in .gz are compressed.
package pairstore

import (
	"fmt"

	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/stream"
)

// Save replaces path with pairs, in order.
func Save(path string, pairs []model.AspectPair) error {
	je := stream.NewJSONLEmitter[model.AspectPair](path, nil, true, stream.Truncate())
	if err := je.Open(); err != nil {
		return fmt.Errorf("pairstore: save %s: %w", path, err)
	}
	if err := je.Emit(pairs); err != nil {
		je.Close()
		return fmt.Errorf("pairstore: save %s: %w", path, err)
	}
	if err := je.Close(); err != nil {
		return fmt.Errorf("pairstore: save %s: %w", path, err)
	}
	return nil
}

// Load reads every pair stored at path, in file order.
func Load(path string) ([]model.AspectPair, error) {
	jr, err := stream.NewJSONLReader[model.AspectPair](path, nil)
	if err != nil {
		return nil, fmt.Errorf("pairstore: load %s: %w", path, err)
	}
	defer jr.Close()
	pairs, err := jr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("pairstore: load %s: %w", path, err)
	}
	return pairs, nil
}
