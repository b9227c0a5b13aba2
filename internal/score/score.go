// Package score keeps score for a memory session by listening to board
// events. It never calls into the board.
package score

import (
	"github.com/vovakirdan/tile-memory/internal/config"
	"github.com/vovakirdan/tile-memory/internal/core"
	"github.com/vovakirdan/tile-memory/internal/memory"
)

// Result is the summary of a finished (or abandoned) session.
type Result struct {
	TileSet    string
	Columns    int
	Rows       int
	Seed0      uint64
	Seed1      uint64
	Moves      int
	Matches    int
	Mismatches int
	Score      int
	Completed  bool
}

// ResultSaver persists session results. The sqlite store implements it.
type ResultSaver interface {
	SaveGameResult(r Result) error
}

// Manager tracks score, streaks and found pairs.
// Tiles are used as map keys, so the board's factory must produce
// comparable tiles (pointers or plain values).
type Manager struct {
	rules   config.ScoringConfig
	result  Result
	streak  int
	total   int
	cleared map[memory.Tile]bool

	saver   ResultSaver
	saved   bool
	saveErr error

	onComplete func(Result)
}

// NewManager creates a manager. The result template supplies the tile set
// and seed fields reported with the result.
func NewManager(rules config.ScoringConfig, template Result) *Manager {
	return &Manager{
		rules:   rules,
		result:  template,
		cleared: make(map[memory.Tile]bool),
	}
}

// OnComplete sets a callback run once every pair has been found.
func (m *Manager) OnComplete(fn func(Result)) {
	m.onComplete = fn
}

// SetSaver sets where results are written. The result is saved when the
// last pair is found; Save records a session that ended before that.
func (m *Manager) SetSaver(s ResultSaver) {
	m.saver = s
}

// Save writes the current result unless it has already been saved for this
// session. It returns the error of the completion save, if there was one.
func (m *Manager) Save() error {
	if m.saver == nil {
		return nil
	}
	if !m.saved {
		m.save()
	}
	return m.saveErr
}

func (m *Manager) save() {
	m.saved = true
	m.saveErr = m.saver.SaveGameResult(m.result)
}

// Attach registers the manager's listeners on a board.
func (m *Manager) Attach(b *memory.Board) {
	b.On(memory.EventSetup, m.handle)
	b.On(memory.EventMatch, m.handle)
	b.On(memory.EventMismatch, m.handle)
}

func (m *Manager) handle(e memory.Event) {
	switch ev := e.(type) {
	case memory.SetupEvent:
		m.reset(ev.Columns, ev.Rows)
	case memory.MatchEvent:
		if ev.Match {
			m.matched(ev.Pair)
		} else {
			m.mismatched()
		}
	}
}

func (m *Manager) reset(columns, rows int) {
	m.result.Columns = columns
	m.result.Rows = rows
	m.result.Moves = 0
	m.result.Matches = 0
	m.result.Mismatches = 0
	m.result.Score = 0
	m.result.Completed = false
	m.streak = 0
	m.saved = false
	m.saveErr = nil
	m.total = core.Grid{Columns: columns, Rows: rows}.Size()
	m.cleared = make(map[memory.Tile]bool)
}

func (m *Manager) matched(p memory.Pair) {
	if m.result.Completed || (m.cleared[p.First] && m.cleared[p.Second]) {
		return
	}
	m.cleared[p.First] = true
	m.cleared[p.Second] = true

	m.result.Moves++
	m.result.Matches++
	m.result.Score += m.rules.MatchPoints + m.streak*m.rules.StreakBonus
	m.streak++

	if len(m.cleared) >= m.total {
		m.result.Completed = true
		if m.saver != nil {
			m.save()
		}
		if m.onComplete != nil {
			m.onComplete(m.result)
		}
	}
}

func (m *Manager) mismatched() {
	if m.result.Completed {
		return
	}
	m.result.Moves++
	m.result.Mismatches++
	m.streak = 0
	m.result.Score = core.Max(0, m.result.Score-m.rules.MismatchPenalty)
}

// Cleared reports whether the tile belongs to a found pair.
func (m *Manager) Cleared(t memory.Tile) bool {
	return m.cleared[t]
}

// Result returns the current result.
func (m *Manager) Result() Result {
	return m.result
}

// State returns the session state in platform terms.
func (m *Manager) State() core.GameState {
	return core.GameState{
		Score:    m.result.Score,
		Moves:    m.result.Moves,
		GameOver: m.result.Completed,
	}
}
