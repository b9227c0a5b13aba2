package score

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tile-memory/internal/config"
	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/tiles"
)

func newSession(t *testing.T) (*memory.Board, *Manager) {
	t.Helper()
	b, err := memory.NewBoard(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager(config.DefaultConfig().Scoring, Result{TileSet: "fruit"})
	m.Attach(b)
	if err := b.Setup(context.Background(), tiles.NewFruitFactory(nil), tiles.ExampleLayout()); err != nil {
		t.Fatal(err)
	}
	return b, m
}

func TestManagerScoresMatchesAndStreaks(t *testing.T) {
	b, m := newSession(t)

	_ = b.Select(0, 0) // Apple
	_ = b.Select(0, 2) // Apple
	_ = b.Select(1, 0) // Orange
	_ = b.Select(1, 2) // Orange

	r := m.Result()
	if r.Matches != 2 || r.Moves != 2 {
		t.Errorf("matches/moves = %d/%d, want 2/2", r.Matches, r.Moves)
	}
	// 10 for the first, 10 + 5 streak for the second.
	if r.Score != 25 {
		t.Errorf("score = %d, want 25", r.Score)
	}
	if !m.Cleared(b.TileAt(0, 0)) || m.Cleared(b.TileAt(2, 0)) {
		t.Error("cleared tiles tracked incorrectly")
	}
}

func TestManagerMismatchPenalty(t *testing.T) {
	b, m := newSession(t)

	_ = b.Select(0, 0)
	_ = b.Select(1, 0) // mismatch at score 0 stays 0
	if m.Result().Score != 0 || m.Result().Mismatches != 1 {
		t.Fatalf("result = %+v", m.Result())
	}

	_ = b.Select(0, 0)
	_ = b.Select(0, 2) // +10
	_ = b.Select(1, 0)
	_ = b.Select(2, 0) // -1, streak reset
	_ = b.Select(1, 0)
	_ = b.Select(1, 2) // +10, no bonus

	if got := m.Result().Score; got != 19 {
		t.Errorf("score = %d, want 19", got)
	}
	if m.State().Moves != 4 {
		t.Errorf("moves = %d, want 4", m.State().Moves)
	}
}

func TestManagerIgnoresRepeatedPair(t *testing.T) {
	b, m := newSession(t)

	_ = b.Select(0, 0)
	_ = b.Select(0, 2)
	_ = b.Select(0, 2)
	_ = b.Select(0, 0)

	if r := m.Result(); r.Matches != 1 || r.Score != 10 {
		t.Errorf("re-selecting a found pair counted again: %+v", r)
	}
}

func TestManagerCompletion(t *testing.T) {
	b, m := newSession(t)

	var done []Result
	m.OnComplete(func(r Result) { done = append(done, r) })

	for col := 0; col < 4; col++ {
		for row := 0; row < 2; row++ {
			_ = b.Select(col, row)
			_ = b.Select(col, row+2)
		}
	}

	if len(done) != 1 {
		t.Fatalf("OnComplete called %d times, want 1", len(done))
	}
	r := done[0]
	if !r.Completed || r.Matches != 8 || r.TileSet != "fruit" || r.Columns != 4 || r.Rows != 4 {
		t.Errorf("completion result = %+v", r)
	}
	if !m.State().GameOver {
		t.Error("State().GameOver = false after completion")
	}
}

func TestManagerResetsOnSetup(t *testing.T) {
	b, m := newSession(t)

	_ = b.Select(0, 0)
	_ = b.Select(0, 2)
	if err := b.Setup(context.Background(), tiles.NewFruitFactory(nil), tiles.ExampleLayout()); err != nil {
		t.Fatal(err)
	}

	if r := m.Result(); r.Score != 0 || r.Moves != 0 || r.TileSet != "fruit" {
		t.Errorf("result after new setup = %+v", r)
	}
}

// memorySaver records saved results.
type memorySaver struct {
	saved []Result
	err   error
}

func (s *memorySaver) SaveGameResult(r Result) error {
	s.saved = append(s.saved, r)
	return s.err
}

func clearBoard(b *memory.Board) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 2; row++ {
			_ = b.Select(col, row)
			_ = b.Select(col, row+2)
		}
	}
}

func TestManagerSavesOnCompletion(t *testing.T) {
	b, m := newSession(t)
	saver := &memorySaver{}
	m.SetSaver(saver)

	_ = b.Select(0, 0)
	_ = b.Select(0, 2)
	if len(saver.saved) != 0 {
		t.Fatalf("saved %d results before completion", len(saver.saved))
	}

	clearBoard(b)
	if len(saver.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(saver.saved))
	}
	if r := saver.saved[0]; !r.Completed || r.Matches != 8 {
		t.Errorf("saved result = %+v", r)
	}

	if err := m.Save(); err != nil {
		t.Errorf("Save() = %v", err)
	}
	if len(saver.saved) != 1 {
		t.Errorf("Save after completion wrote again: %d results", len(saver.saved))
	}
}

func TestManagerSavesAbandonedSession(t *testing.T) {
	b, m := newSession(t)
	saver := &memorySaver{}
	m.SetSaver(saver)

	_ = b.Select(0, 0)
	_ = b.Select(1, 0)

	if err := m.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if len(saver.saved) != 1 || saver.saved[0].Completed || saver.saved[0].Mismatches != 1 {
		t.Errorf("saved = %+v, want one incomplete result", saver.saved)
	}
}

func TestManagerSaveError(t *testing.T) {
	b, m := newSession(t)
	errDisk := errors.New("disk full")
	m.SetSaver(&memorySaver{err: errDisk})

	clearBoard(b)
	if err := m.Save(); !errors.Is(err, errDisk) {
		t.Errorf("Save() = %v, want %v", err, errDisk)
	}
}

func TestManagerSaveWithoutSaver(t *testing.T) {
	_, m := newSession(t)
	if err := m.Save(); err != nil {
		t.Errorf("Save() = %v, want nil", err)
	}
}
