// Package memory implements the state machine of a tile-matching board:
// a grid of tiles, a two-slot selection cursor, pair evaluation and a
// deterministic shuffle. Every state change is announced through a
// Broadcaster so views, score keepers and bots stay decoupled from the board.
package memory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tile-memory/internal/core"
)

// Board errors.
var (
	ErrInvalidDimensions = errors.New("memory: board dimensions must be positive")
	ErrOddCells          = errors.New("memory: board must have an even number of cells")
	ErrNilFactory        = errors.New("memory: tile factory is nil")
	ErrNotReady          = errors.New("memory: board has not been set up")
	ErrOutOfBounds       = errors.New("memory: cell is outside the board")
	ErrSameCell          = errors.New("memory: cell is already selected")
	ErrNegativeShuffle   = errors.New("memory: shuffle iterations must not be negative")
	ErrFactoryPanic      = errors.New("memory: tile factory panicked")
)

// State is the implicit phase the board is in.
type State int

const (
	StateEmpty       State = iota // No tiles placed
	StateReady                    // Tiles placed, nothing selected
	StateOneSelected              // First selection held
	StateTwoSelected              // Both selections held, pair evaluated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateReady:
		return "Ready"
	case StateOneSelected:
		return "OneSelected"
	case StateTwoSelected:
		return "TwoSelected"
	default:
		return "Unknown"
	}
}

// selection is a held pick: the cell and the tile that was on it.
type selection struct {
	cell core.Cell
	tile Tile
}

// Board owns a grid of tiles and the player's selection state.
// It is not safe for concurrent use; listeners run on the caller's goroutine
// and may call back into the board.
type Board struct {
	grid   core.Grid
	tiles  []Tile
	first  *selection
	second *selection

	factory TileFactory
	rng     *Generator
	events  *Broadcaster
	logger  *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithGenerator injects the generator used by Shuffle.
func WithGenerator(g *Generator) Option {
	return func(b *Board) {
		if g != nil {
			b.rng = g
		}
	}
}

// WithBroadcaster shares an existing broadcaster with the board.
func WithBroadcaster(e *Broadcaster) Option {
	return func(b *Board) {
		if e != nil {
			b.events = e
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBoard creates an empty board. The cell count must be even.
func NewBoard(columns, rows int, opts ...Option) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, columns, rows)
	}
	grid := core.Grid{Columns: columns, Rows: rows}
	if !grid.Pairable() {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddCells, columns, rows)
	}

	b := &Board{
		grid:   grid,
		tiles:  make([]Tile, grid.Size()),
		rng:    DefaultGenerator(),
		events: NewBroadcaster(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Columns returns the board width.
func (b *Board) Columns() int { return b.grid.Columns }

// Rows returns the board height.
func (b *Board) Rows() int { return b.grid.Rows }

// Grid returns the board dimensions.
func (b *Board) Grid() core.Grid { return b.grid }

// Tiles returns a copy of the tile sequence in row-major order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// TileAt returns the tile on a cell, or nil for an empty or outside cell.
func (b *Board) TileAt(column, row int) Tile {
	c := core.NewCell(column, row)
	if !b.grid.Contains(c) {
		return nil
	}
	return b.tiles[c.Index(b.grid.Columns)]
}

// FirstSelection returns the first selected tile, or nil.
func (b *Board) FirstSelection() Tile {
	if b.first == nil {
		return nil
	}
	return b.first.tile
}

// SecondSelection returns the second selected tile, or nil.
func (b *Board) SecondSelection() Tile {
	if b.second == nil {
		return nil
	}
	return b.second.tile
}

// Factory returns the factory stored by the last successful Setup.
func (b *Board) Factory() TileFactory { return b.factory }

// State returns the current phase of the board.
func (b *Board) State() State {
	switch {
	case b.factory == nil:
		return StateEmpty
	case b.second != nil:
		return StateTwoSelected
	case b.first != nil:
		return StateOneSelected
	default:
		return StateReady
	}
}

// On registers a listener on the board's broadcaster.
func (b *Board) On(t EventType, l Listener) {
	b.events.On(t, l)
}

// Events returns the board's broadcaster.
func (b *Board) Events() *Broadcaster { return b.events }

// Setup fills the board from layout using factory.
//
// All requests are issued at once and Setup waits for every one of them.
// Setup is atomic: if any request fails or panics nothing is placed and the
// previous tiles and factory are kept. The first failure cancels the context
// passed to the remaining requests and is the error returned. On success one
// place event is broadcast per cell in layout order, followed by a single
// setup event.
func (b *Board) Setup(ctx context.Context, factory TileFactory, layout Layout) error {
	if factory == nil {
		return ErrNilFactory
	}
	if err := layout.Validate(b.grid.Columns, b.grid.Rows); err != nil {
		return err
	}

	cells := b.grid.Cells()
	tiles := make([]Tile, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range cells {
		tileType := layout[c.Row][c.Column]
		g.Go(func() error {
			tile, err := request(gctx, factory, tileType)
			if err != nil {
				b.logger.Debug("setup failed", "column", c.Column, "row", c.Row, "error", err)
				return fmt.Errorf("memory: request %q for cell (%d,%d): %w",
					tileType, c.Column, c.Row, err)
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.factory = factory
	b.first, b.second = nil, nil
	for i, c := range cells {
		b.tiles[i] = tiles[i]
		b.events.Broadcast(PlaceEvent{
			Column:   c.Column,
			Row:      c.Row,
			Tile:     tiles[i],
			TileType: layout[c.Row][c.Column],
		})
	}

	b.logger.Debug("setup complete", "columns", b.grid.Columns, "rows", b.grid.Rows)
	b.events.Broadcast(SetupEvent{Columns: b.grid.Columns, Rows: b.grid.Rows})
	return nil
}

// request asks factory for one tile, turning a panic into an error.
func request(ctx context.Context, factory TileFactory, tileType string) (tile Tile, err error) {
	defer func() {
		if r := recover(); r != nil {
			tile, err = nil, fmt.Errorf("%w: %v", ErrFactoryPanic, r)
		}
	}()
	return factory.Request(ctx, tileType)
}

// Shuffle permutes the tiles iterations times.
// Each iteration broadcasts a shuffle event with before/after snapshots;
// a single shuffled event follows the last one.
//
// Unlike a bare permutation, Shuffle first clears any held selection, so a
// board holding one or two picks emits a deselect event ahead of the shuffle
// events. A held selection would otherwise point at a cell whose tile moved.
func (b *Board) Shuffle(iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeShuffle, iterations)
	}
	if b.first != nil || b.second != nil {
		b.Deselect()
	}

	for n := 0; n < iterations; n++ {
		before := b.Tiles()
		for i := len(b.tiles) - 1; i >= 1; i-- {
			SwapElements(b.tiles, i, b.rng.RandomRangeInteger(0, i))
		}
		b.events.Broadcast(ChangeEvent{Before: before, After: b.Tiles()})
	}

	b.logger.Debug("shuffled", "iterations", iterations)
	b.events.Broadcast(ShuffledEvent{Iterations: iterations})
	return nil
}

// Select picks the tile at (column, row).
//
// With nothing held it becomes the first selection. With one held it
// becomes the second selection and the pair is evaluated immediately,
// broadcasting a match or mismatch event. With two held the pair is
// cleared first and the pick starts a new pair. Picking the cell that is
// already the first selection returns ErrSameCell and changes nothing.
func (b *Board) Select(column, row int) error {
	if b.factory == nil {
		return ErrNotReady
	}
	c := core.NewCell(column, row)
	if !b.grid.Contains(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, column, row)
	}

	if b.first != nil && b.second != nil {
		b.Deselect()
	}

	tile := b.tiles[c.Index(b.grid.Columns)]

	if b.first == nil {
		b.first = &selection{cell: c, tile: tile}
		b.events.Broadcast(SelectEvent{Kind: EventSelectFirst, Column: column, Row: row, Tile: tile})
		return nil
	}

	if b.first.cell == c {
		return fmt.Errorf("%w: (%d,%d)", ErrSameCell, column, row)
	}

	b.second = &selection{cell: c, tile: tile}
	b.events.Broadcast(SelectEvent{Kind: EventSelectSecond, Column: column, Row: row, Tile: tile})

	// A listener may have deselected during the broadcast above.
	if b.first == nil || b.second == nil {
		return nil
	}
	pair := Pair{First: b.first.tile, Second: b.second.tile}
	b.events.Broadcast(MatchEvent{Pair: pair, Match: b.factory.MatchTiles(pair)})
	return nil
}

// Deselect clears both selections and broadcasts a deselect event,
// whatever the current state.
func (b *Board) Deselect() {
	b.first, b.second = nil, nil
	b.events.Broadcast(DeselectEvent{})
}

// SelectedCells returns the cells of the held selections in pick order.
func (b *Board) SelectedCells() []core.Cell {
	var cells []core.Cell
	if b.first != nil {
		cells = append(cells, b.first.cell)
	}
	if b.second != nil {
		cells = append(cells, b.second.cell)
	}
	return cells
}
