// Package bot plays a memory board automatically.
//
// The bot only learns tiles by selecting them, and forgets each revealed
// tile with probability 1-recall. All choices come from a seeded
// memory.Generator, so a run is reproducible from its seeds.
package bot

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-memory/internal/core"
	"github.com/vovakirdan/tile-memory/internal/memory"
)

// ErrMoveLimit is returned when the bot gives up before clearing the board.
var ErrMoveLimit = errors.New("bot: move limit reached")

// Config defines how the bot plays.
type Config struct {
	Recall   float64 // Probability of remembering a revealed tile
	MaxMoves int     // Pairs to try before giving up; 0 means columns*rows*4
}

// Outcome summarizes a run.
type Outcome struct {
	Moves   int
	Matches int
	Cleared bool
}

// Bot is an automatic player. Create one per board.
type Bot struct {
	cfg    Config
	rng    *memory.Generator
	logger *log.Logger

	board   *memory.Board
	known   map[core.Cell]memory.Tile
	cleared map[core.Cell]bool
	outcome Outcome
}

// New creates a bot drawing choices from rng.
func New(cfg Config, rng *memory.Generator, logger *log.Logger) *Bot {
	if rng == nil {
		rng = memory.DefaultGenerator()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bot{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		known:   make(map[core.Cell]memory.Tile),
		cleared: make(map[core.Cell]bool),
	}
}

// Attach registers the bot's listeners on b. Must be called before Setup.
func (bt *Bot) Attach(b *memory.Board) {
	bt.board = b
	b.On(memory.EventSetup, bt.handle)
	b.On(memory.EventShuffle, bt.handle)
	b.On(memory.EventMatch, bt.handle)
}

func (bt *Bot) handle(e memory.Event) {
	switch ev := e.(type) {
	case memory.SetupEvent, memory.ChangeEvent:
		// Positions changed; everything learned is stale.
		bt.known = make(map[core.Cell]memory.Tile)
		bt.cleared = make(map[core.Cell]bool)
		bt.outcome = Outcome{}
	case memory.MatchEvent:
		if !ev.Match {
			return
		}
		for _, c := range bt.board.SelectedCells() {
			bt.cleared[c] = true
			delete(bt.known, c)
		}
		bt.outcome.Matches++
	}
}

// Run plays until the board is cleared, the move limit is hit or ctx is done.
func (bt *Bot) Run(ctx context.Context) (Outcome, error) {
	if bt.board == nil {
		return Outcome{}, errors.New("bot: not attached to a board")
	}
	grid := bt.board.Grid()
	limit := bt.cfg.MaxMoves
	if limit <= 0 {
		limit = grid.Size() * 4
	}

	for len(bt.cleared) < grid.Size() {
		if err := ctx.Err(); err != nil {
			return bt.outcome, err
		}
		if bt.outcome.Moves >= limit {
			return bt.outcome, ErrMoveLimit
		}
		if err := bt.turn(grid); err != nil {
			return bt.outcome, err
		}
		bt.outcome.Moves++
	}

	bt.outcome.Cleared = true
	bt.logger.Info("board cleared", "moves", bt.outcome.Moves, "matches", bt.outcome.Matches)
	return bt.outcome, nil
}

// turn selects one pair.
func (bt *Bot) turn(grid core.Grid) error {
	first, second, ok := bt.knownPair()
	if !ok {
		first = bt.pick(grid, nil)
	}
	if err := bt.reveal(first); err != nil {
		return err
	}

	if !ok {
		second, ok = bt.partnerOf(first)
		if !ok {
			second = bt.pick(grid, &first)
		}
	}
	bt.logger.Debug("turn", "first", first, "second", second, "recalled", ok)
	return bt.reveal(second)
}

// reveal selects a cell and maybe remembers what was under it.
func (bt *Bot) reveal(c core.Cell) error {
	if err := bt.board.Select(c.Column, c.Row); err != nil {
		return err
	}
	if bt.cleared[c] {
		return nil
	}
	if bt.rng.RandomRangeInteger(0, 1000) < int(bt.cfg.Recall*1000) {
		bt.known[c] = bt.board.TileAt(c.Column, c.Row)
	}
	return nil
}

// knownPair finds two remembered, uncleared cells that match.
func (bt *Bot) knownPair() (core.Cell, core.Cell, bool) {
	cells := bt.knownCells()
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			if bt.matches(cells[i], cells[j]) {
				return cells[i], cells[j], true
			}
		}
	}
	return core.Cell{}, core.Cell{}, false
}

// partnerOf finds a remembered cell matching the tile on c.
func (bt *Bot) partnerOf(c core.Cell) (core.Cell, bool) {
	for _, k := range bt.knownCells() {
		if k != c && bt.matches(c, k) {
			return k, true
		}
	}
	return core.Cell{}, false
}

func (bt *Bot) matches(a, b core.Cell) bool {
	return bt.board.Factory().MatchTiles(memory.Pair{
		First:  bt.board.TileAt(a.Column, a.Row),
		Second: bt.board.TileAt(b.Column, b.Row),
	})
}

// knownCells returns remembered cells in row-major order.
func (bt *Bot) knownCells() []core.Cell {
	var cells []core.Cell
	for _, c := range bt.board.Grid().Cells() {
		if _, ok := bt.known[c]; ok && !bt.cleared[c] {
			cells = append(cells, c)
		}
	}
	return cells
}

// pick chooses a random uncleared cell other than exclude, preferring
// cells the bot does not remember.
func (bt *Bot) pick(grid core.Grid, exclude *core.Cell) core.Cell {
	var unknown, open []core.Cell
	for _, c := range grid.Cells() {
		if bt.cleared[c] || (exclude != nil && c == *exclude) {
			continue
		}
		open = append(open, c)
		if _, ok := bt.known[c]; !ok {
			unknown = append(unknown, c)
		}
	}

	pool := unknown
	if len(pool) == 0 {
		pool = open
	}
	return pool[bt.rng.RandomRangeInteger(0, len(pool))]
}
