// Package tiles provides concrete tile factories for the memory board.
package tiles

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/registry"
)

// Tile is a tile with a logical kind and a unique serial number.
// Two tiles of the same kind are different instances but match each other.
type Tile struct {
	Kind   string
	Symbol string
	Serial int64
}

// String returns the kind and serial, e.g. "Apple#3".
func (t *Tile) String() string {
	return fmt.Sprintf("%s#%d", t.Kind, t.Serial)
}

// kindOf returns the logical kind of a tile produced by this package.
func kindOf(tile memory.Tile) (string, bool) {
	t, ok := tile.(*Tile)
	if !ok || t == nil {
		return "", false
	}
	return t.Kind, true
}

// matchKinds reports whether both tiles are package tiles of the same kind.
func matchKinds(p memory.Pair) bool {
	a, ok1 := kindOf(p.First)
	b, ok2 := kindOf(p.Second)
	return ok1 && ok2 && a == b
}

// SymbolFactory builds tiles from a label to symbol table.
// It is safe for concurrent use.
type SymbolFactory struct {
	memory.BaseFactory

	id      string
	title   string
	symbols map[string]string
	serial  atomic.Int64
}

// NewSymbolFactory creates a factory for the given labels.
func NewSymbolFactory(id, title string, symbols map[string]string) *SymbolFactory {
	s := make(map[string]string, len(symbols))
	for k, v := range symbols {
		s[k] = v
	}
	return &SymbolFactory{id: id, title: title, symbols: s}
}

// ID returns the tile set identifier.
func (f *SymbolFactory) ID() string { return f.id }

// Title returns the display name.
func (f *SymbolFactory) Title() string { return f.title }

// Request creates a tile for a known label.
func (f *SymbolFactory) Request(ctx context.Context, tileType string) (memory.Tile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sym, ok := f.symbols[tileType]
	if !ok {
		return nil, fmt.Errorf("tiles: unknown tile type %q", tileType)
	}
	return &Tile{Kind: tileType, Symbol: sym, Serial: f.serial.Add(1)}, nil
}

// MatchTiles compares logical kinds rather than instances.
func (f *SymbolFactory) MatchTiles(p memory.Pair) bool {
	return matchKinds(p)
}

// Types returns the known labels, sorted.
func (f *SymbolFactory) Types() []string {
	types := make([]string, 0, len(f.symbols))
	for k := range f.symbols {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

var _ registry.TileSet = (*SymbolFactory)(nil)

// RegisterSymbols adds a symbol tile set to the registry unless the id is
// already taken. It reports whether the set was added.
func RegisterSymbols(id, title string, symbols map[string]string) bool {
	return registry.TryRegister(id, func() registry.TileSet {
		return NewSymbolFactory(id, title, symbols)
	})
}
