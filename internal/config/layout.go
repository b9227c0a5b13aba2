package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-memory/internal/memory"
)

// ErrNoTypes is returned when a layout must be generated from an empty type list.
var ErrNoTypes = errors.New("config: tile set has no types")

// GenerateLayout fills a columns x rows grid with pairs of types, cycling
// through types in order. The grid must have an even number of cells.
// The result is not shuffled; the board does that.
func GenerateLayout(columns, rows int, types []string) (memory.Layout, error) {
	if len(types) == 0 {
		return nil, ErrNoTypes
	}
	if columns <= 0 || rows <= 0 || (columns*rows)%2 != 0 {
		return nil, fmt.Errorf("config: cannot pair a %dx%d board", columns, rows)
	}

	layout := make(memory.Layout, rows)
	for r := range layout {
		layout[r] = make([]string, columns)
		for c := range layout[r] {
			i := c + r*columns
			layout[r][c] = types[(i/2)%len(types)]
		}
	}
	return layout, nil
}

// ResolveLayout returns the configured layout when it fits the board and
// only uses labels from types, and otherwise a generated one.
func (c MemoryConfig) ResolveLayout(types []string) (memory.Layout, error) {
	layout := memory.Layout(c.Layout)
	if len(c.Layout) > 0 && layout.Validate(c.Board.Columns, c.Board.Rows) == nil && usesOnly(layout, types) {
		return layout, nil
	}
	return GenerateLayout(c.Board.Columns, c.Board.Rows, types)
}

func usesOnly(layout memory.Layout, types []string) bool {
	known := make(map[string]bool, len(types))
	for _, t := range types {
		known[t] = true
	}
	for _, label := range layout.Labels() {
		if !known[label] {
			return false
		}
	}
	return true
}
