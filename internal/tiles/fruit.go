package tiles

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/registry"
)

// Fruit tile types.
const (
	Apple  = "Apple"
	Banana = "Banana"
	Cherry = "Cherry"
	Grape  = "Grape"
	Lemon  = "Lemon"
	Orange = "Orange"
	Pear   = "Pear"
	Plum   = "Plum"
)

// FruitTypes lists the fruit labels in display order.
var FruitTypes = []string{Apple, Orange, Banana, Cherry, Grape, Lemon, Pear, Plum}

// Bundle maps a fruit to the glyph drawn for it.
type Bundle map[string]string

// DefaultBundle is the built-in fruit glyph set.
func DefaultBundle() Bundle {
	return Bundle{
		Apple:  "A",
		Banana: "B",
		Cherry: "C",
		Grape:  "G",
		Lemon:  "L",
		Orange: "O",
		Pear:   "P",
		Plum:   "M",
	}
}

// fruitBuilder creates one fruit tile from the bundle.
type fruitBuilder func(f *FruitFactory) *Tile

// FruitFactory produces the eight fruit tiles.
type FruitFactory struct {
	memory.BaseFactory

	bundle   Bundle
	builders map[string]fruitBuilder
	serial   atomic.Int64
}

// NewFruitFactory creates a fruit factory drawing glyphs from bundle.
// A nil bundle uses DefaultBundle.
func NewFruitFactory(bundle Bundle) *FruitFactory {
	if bundle == nil {
		bundle = DefaultBundle()
	}
	f := &FruitFactory{bundle: bundle}
	f.builders = map[string]fruitBuilder{
		Apple:  buildFruit(Apple),
		Banana: buildFruit(Banana),
		Cherry: buildFruit(Cherry),
		Grape:  buildFruit(Grape),
		Lemon:  buildFruit(Lemon),
		Orange: buildFruit(Orange),
		Pear:   buildFruit(Pear),
		Plum:   buildFruit(Plum),
	}
	return f
}

func init() {
	registry.Register("fruit", func() registry.TileSet {
		return NewFruitFactory(nil)
	})
}

// ID returns the tile set identifier.
func (f *FruitFactory) ID() string { return "fruit" }

// Title returns the display name.
func (f *FruitFactory) Title() string { return "Fruit Basket" }

func buildFruit(kind string) fruitBuilder {
	return func(f *FruitFactory) *Tile {
		return &Tile{Kind: kind, Symbol: f.bundle[kind], Serial: f.serial.Add(1)}
	}
}

// Request creates the fruit named by tileType.
func (f *FruitFactory) Request(ctx context.Context, tileType string) (memory.Tile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	build, ok := f.builders[tileType]
	if !ok {
		return nil, fmt.Errorf("tiles: no fruit named %q (known: %v)", tileType, FruitTypes)
	}
	return build(f), nil
}

// MatchTiles compares fruit kinds, not instances.
func (f *FruitFactory) MatchTiles(p memory.Pair) bool {
	return matchKinds(p)
}

// Types returns the fruit labels.
func (f *FruitFactory) Types() []string {
	out := make([]string, len(FruitTypes))
	copy(out, FruitTypes)
	return out
}

var _ registry.TileSet = (*FruitFactory)(nil)

// ExampleLayout is the 4x4 fruit layout with two of each type.
func ExampleLayout() memory.Layout {
	return memory.Layout{
		{Apple, Orange, Banana, Cherry},
		{Grape, Lemon, Pear, Plum},
		{Apple, Orange, Banana, Cherry},
		{Grape, Lemon, Pear, Plum},
	}
}
