package memory

import (
	"errors"
	"fmt"
)

// Layout is the target arrangement of type labels, one row per slice.
type Layout [][]string

// ErrNilLayout is returned when setup receives no layout at all.
var ErrNilLayout = errors.New("memory: layout is nil")

// Validate checks the layout has exactly rows rows of columns labels.
// The row count and every row's length are checked independently and all
// mismatches are reported together.
func (l Layout) Validate(columns, rows int) error {
	if l == nil {
		return ErrNilLayout
	}

	var errs []error
	if len(l) != rows {
		errs = append(errs, fmt.Errorf("memory: layout has %d rows, board has %d", len(l), rows))
	}
	for r, row := range l {
		if row == nil {
			errs = append(errs, fmt.Errorf("memory: layout row %d is nil", r))
			continue
		}
		if len(row) != columns {
			errs = append(errs, fmt.Errorf("memory: layout row %d has %d columns, board has %d", r, len(row), columns))
		}
	}
	return errors.Join(errs...)
}

// Labels returns every label in row-major order.
func (l Layout) Labels() []string {
	var labels []string
	for _, row := range l {
		labels = append(labels, row...)
	}
	return labels
}

// Counts returns how many times each label occurs.
func (l Layout) Counts() map[string]int {
	counts := make(map[string]int)
	for _, row := range l {
		for _, label := range row {
			counts[label]++
		}
	}
	return counts
}

// Pairable returns true if every label occurs an even number of times,
// i.e. the layout can be cleared completely.
func (l Layout) Pairable() bool {
	for _, n := range l.Counts() {
		if n%2 != 0 {
			return false
		}
	}
	return true
}
