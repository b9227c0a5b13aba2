package core

import "testing"

func TestCellIndex(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		columns  int
		expected int
	}{
		{name: "origin", cell: NewCell(0, 0), columns: 4, expected: 0},
		{name: "first row", cell: NewCell(3, 0), columns: 4, expected: 3},
		{name: "second row", cell: NewCell(0, 1), columns: 4, expected: 4},
		{name: "last cell", cell: NewCell(3, 3), columns: 4, expected: 15},
		{name: "wide grid", cell: NewCell(2, 1), columns: 6, expected: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.cell.Index(tc.columns)
			if got != tc.expected {
				t.Errorf("Index() = %d, expected %d", got, tc.expected)
			}
			if back := CellAt(got, tc.columns); back != tc.cell {
				t.Errorf("CellAt(%d) = %+v, expected %+v", got, back, tc.cell)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Columns: 4, Rows: 3}

	inside := []Cell{{0, 0}, {3, 0}, {0, 2}, {3, 2}}
	for _, c := range inside {
		if !g.Contains(c) {
			t.Errorf("Contains(%+v) = false, expected true", c)
		}
	}

	outside := []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 3}}
	for _, c := range outside {
		if g.Contains(c) {
			t.Errorf("Contains(%+v) = true, expected false", c)
		}
	}
}

func TestGridPairable(t *testing.T) {
	tests := []struct {
		grid     Grid
		expected bool
	}{
		{Grid{4, 4}, true},
		{Grid{3, 2}, true},
		{Grid{3, 3}, false},
		{Grid{1, 1}, false},
		{Grid{0, 4}, false},
		{Grid{-2, 2}, false},
	}

	for _, tc := range tests {
		if got := tc.grid.Pairable(); got != tc.expected {
			t.Errorf("%+v.Pairable() = %v, expected %v", tc.grid, got, tc.expected)
		}
	}
}

func TestGridCells(t *testing.T) {
	g := Grid{Columns: 2, Rows: 2}
	cells := g.Cells()

	expected := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(cells) != len(expected) {
		t.Fatalf("Cells() returned %d cells, expected %d", len(cells), len(expected))
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("Cells()[%d] = %+v, expected %+v", i, cells[i], expected[i])
		}
	}
}
