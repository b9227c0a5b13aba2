package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/tiles"
)

func setupBoard(t *testing.T, cfg Config, seed0, seed1 uint64) (*memory.Board, *Bot) {
	t.Helper()
	b, err := memory.NewBoard(4, 4, memory.WithGenerator(memory.NewGenerator(seed0, seed1)))
	if err != nil {
		t.Fatal(err)
	}
	bt := New(cfg, memory.NewGenerator(seed1, seed0), nil)
	bt.Attach(b)

	if err := b.Setup(context.Background(), tiles.NewFruitFactory(nil), tiles.ExampleLayout()); err != nil {
		t.Fatal(err)
	}
	if err := b.Shuffle(2); err != nil {
		t.Fatal(err)
	}
	return b, bt
}

func TestBotClearsBoard(t *testing.T) {
	b, bt := setupBoard(t, Config{Recall: 1}, 5, 9)

	matches := 0
	b.On(memory.EventMatch, func(memory.Event) { matches++ })

	out, err := bt.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Cleared || out.Matches != 8 || matches != 8 {
		t.Errorf("outcome = %+v, board matches = %d", out, matches)
	}
	if out.Moves < 8 {
		t.Errorf("cleared in %d moves, fewer than pairs", out.Moves)
	}
}

func TestBotDeterministic(t *testing.T) {
	_, a := setupBoard(t, Config{Recall: 0.5, MaxMoves: 500}, 3, 4)
	_, c := setupBoard(t, Config{Recall: 0.5, MaxMoves: 500}, 3, 4)

	outA, errA := a.Run(context.Background())
	outC, errC := c.Run(context.Background())

	if outA != outC || !errors.Is(errA, errC) {
		t.Errorf("runs differ: %+v/%v vs %+v/%v", outA, errA, outC, errC)
	}
}

func TestBotMoveLimit(t *testing.T) {
	_, bt := setupBoard(t, Config{Recall: 0, MaxMoves: 1}, 1, 2)

	out, err := bt.Run(context.Background())
	if !errors.Is(err, ErrMoveLimit) {
		t.Fatalf("Run() error = %v, want ErrMoveLimit", err)
	}
	if out.Moves != 1 || out.Cleared {
		t.Errorf("outcome = %+v", out)
	}
}

func TestBotCancelled(t *testing.T) {
	_, bt := setupBoard(t, Config{Recall: 1}, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bt.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestBotNotAttached(t *testing.T) {
	if _, err := New(Config{}, nil, nil).Run(context.Background()); err == nil {
		t.Error("Run() without a board should fail")
	}
}
