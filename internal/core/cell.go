// Package core provides fundamental types shared by the memory board and its
// collaborators. It has no external dependencies so board logic stays pure and
// testable.
package core

// Cell addresses a single board position.
type Cell struct {
	Column int
	Row    int
}

// NewCell creates a cell at the given column and row.
func NewCell(column, row int) Cell {
	return Cell{Column: column, Row: row}
}

// Index returns the position of the cell in a row-major slice
// of a grid that is columns wide.
func (c Cell) Index(columns int) int {
	return c.Column + c.Row*columns
}

// CellAt is the inverse of Index.
func CellAt(index, columns int) Cell {
	return Cell{Column: index % columns, Row: index / columns}
}

// Grid describes board dimensions.
type Grid struct {
	Columns int
	Rows    int
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Columns * g.Rows
}

// Contains returns true if the cell lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Column >= 0 && c.Column < g.Columns && c.Row >= 0 && c.Row < g.Rows
}

// Cells returns every cell of the grid in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			cells = append(cells, Cell{Column: col, Row: row})
		}
	}
	return cells
}

// Pairable returns true if the grid can be split into pairs of cells.
func (g Grid) Pairable() bool {
	return g.Columns > 0 && g.Rows > 0 && g.Size()%2 == 0
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
