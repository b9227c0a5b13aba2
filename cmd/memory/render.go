package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-memory/internal/bot"
	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/score"
	"github.com/vovakirdan/tile-memory/internal/tiles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	clearedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// symbolOf returns the glyph for a tile.
func symbolOf(t memory.Tile) string {
	switch v := t.(type) {
	case nil:
		return "."
	case *tiles.Tile:
		return v.Symbol
	default:
		return fmt.Sprint(v)
	}
}

// renderBoard draws the final board, found pairs highlighted.
func renderBoard(b *memory.Board, m *score.Manager) string {
	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		cells := make([]string, b.Columns())
		for col := range cells {
			tile := b.TileAt(col, row)
			style := hiddenStyle
			if m.Cleared(tile) {
				style = clearedStyle
			}
			cells[col] = style.Render(fmt.Sprintf("%-2s", symbolOf(tile)))
		}
		sb.WriteString(strings.Join(cells, " "))
		if row < b.Rows()-1 {
			sb.WriteString("\n")
		}
	}
	return boxStyle.Render(sb.String())
}

// renderLayout draws a layout with one label per cell.
func renderLayout(l memory.Layout) string {
	width := 0
	for _, label := range l.Labels() {
		width = max(width, len(label))
	}

	var sb strings.Builder
	for r, row := range l {
		for c, label := range row {
			if c > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%-*s", width, label)
		}
		if r < len(l)-1 {
			sb.WriteString("\n")
		}
	}
	return boxStyle.Render(sb.String())
}

// renderResult draws the session summary.
func renderResult(title string, r score.Result, o bot.Outcome) string {
	status := "gave up"
	if r.Completed {
		status = "cleared"
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		fmt.Sprintf("%s %dx%d", labelStyle.Render("Board:     "), r.Columns, r.Rows),
		fmt.Sprintf("%s %d / %d", labelStyle.Render("Seeds:     "), r.Seed0, r.Seed1),
		fmt.Sprintf("%s %d (%d matches, %d misses)", labelStyle.Render("Moves:     "), r.Moves, r.Matches, r.Mismatches),
		fmt.Sprintf("%s %d", labelStyle.Render("Score:     "), r.Score),
		fmt.Sprintf("%s %s after %d turns", labelStyle.Render("Status:    "), status, o.Moves),
	}
	return strings.Join(lines, "\n")
}
