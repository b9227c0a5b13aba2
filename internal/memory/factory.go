package memory

import (
	"context"
	"errors"
)

// Tile is an opaque value produced by a TileFactory.
// The board never looks inside a tile.
type Tile any

// Pair is two selected tiles handed to a factory for judgment.
type Pair struct {
	First  Tile
	Second Tile
}

// TileFactory produces tiles for type labels and judges whether two of its
// tiles match.
type TileFactory interface {
	// Request produces a tile for the type label.
	// The board issues one request per cell without waiting for earlier
	// ones, so implementations must be safe for concurrent use.
	Request(ctx context.Context, tileType string) (Tile, error)

	// MatchTiles reports whether the pair matches.
	// It must not have side effects or modify the tiles.
	MatchTiles(p Pair) bool
}

// ErrNotImplemented is returned by BaseFactory.Request.
var ErrNotImplemented = errors.New("memory: tile factory does not implement Request")

// BaseFactory is the base factory contract. Request always fails and
// MatchTiles compares tiles by equality. Concrete factories embed it and
// override what they need.
type BaseFactory struct{}

// Request always fails with ErrNotImplemented.
func (BaseFactory) Request(_ context.Context, _ string) (Tile, error) {
	return nil, ErrNotImplemented
}

// MatchTiles reports whether both tiles are equal.
// Tiles holding non-comparable dynamic types never match.
func (BaseFactory) MatchTiles(p Pair) (match bool) {
	defer func() {
		if recover() != nil {
			match = false
		}
	}()
	return p.First == p.Second
}

var _ TileFactory = BaseFactory{}
