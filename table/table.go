// SPDX-License-Identifier: MIT
// Package: table
//
// table.go — Table type, constructors and read-only accessors.
//
// Contract:
//   • Constructors validate everything up-front and deep-copy the input.
//   • Accessors never expose internal slices.
//   • A Table with zero columns is valid (Rows()==0); analysis of it is empty.
//
// Complexity:
//   • Construction: O(R*C) time and space.
//   • At/Name/Rows/Columns: O(1). Column/Names: O(R) / O(C) copies.

package table

import "fmt"

const (
	methodFromColumns = "FromColumns"
	methodNewNamed    = "NewNamed"
)

// Table is an immutable, rectangular table of integers with named columns.
type Table struct {
	names []string // column names, unique, len == len(cols)
	cols  [][]int  // cols[c][r]; all len(cols[c]) == rows
	rows  int      // shared column length
}

// FromColumns builds a Table from columns named by ColumnName ("Nr1"…).
// Returns ErrSchemaMismatch if the columns differ in length.
func FromColumns(cols [][]int) (*Table, error) {
	t, err := build(ColumnNames(len(cols)), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromColumns, err)
	}

	return t, nil
}

// NewNamed builds a Table with explicit column names.
// Returns ErrSchemaMismatch when len(names) != len(cols) or the columns differ
// in length, ErrBadColumnName for an empty name, ErrDuplicateColumn for a
// repeated name.
func NewNamed(names []string, cols [][]int) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%s: %d names for %d columns: %w",
			methodNewNamed, len(names), len(cols), ErrSchemaMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%s: column %d has an empty name: %w", methodNewNamed, i, ErrBadColumnName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: %q: %w", methodNewNamed, name, ErrDuplicateColumn)
		}
		seen[name] = struct{}{}
	}
	t, err := build(names, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewNamed, err)
	}

	return t, nil
}

// build checks rectangularity and deep-copies names and cells.
func build(names []string, cols [][]int) (*Table, error) {
	t := &Table{
		names: append([]string(nil), names...),
		cols:  make([][]int, len(cols)),
	}
	if len(cols) > 0 {
		t.rows = len(cols[0])
	}
	for c, col := range cols {
		if len(col) != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				names[c], len(col), t.rows, ErrSchemaMismatch)
		}
		t.cols[c] = append(make([]int, 0, t.rows), col...)
	}

	return t, nil
}

// Rows returns the shared column length.
func (t *Table) Rows() int { return t.rows }

// Columns returns the number of columns.
func (t *Table) Columns() int { return len(t.cols) }

// Len returns the total number of cells (Rows()*Columns()).
func (t *Table) Len() int { return t.rows * len(t.cols) }

// Name returns the name of column c. Panics if c is out of range,
// like indexing a slice.
func (t *Table) Name(c int) string { return t.names[c] }

// Names returns a copy of the column names in order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}

	return -1
}

// Column returns a copy of column c.
func (t *Table) Column(c int) ([]int, error) {
	if c < 0 || c >= len(t.cols) {
		return nil, fmt.Errorf("Column(%d): %d columns: %w", c, len(t.cols), ErrOutOfRange)
	}

	return append([]int(nil), t.cols[c]...), nil
}

// ColumnsCopy returns a deep copy of all columns, cols[c][r].
func (t *Table) ColumnsCopy() [][]int {
	out := make([][]int, len(t.cols))
	for c, col := range t.cols {
		out[c] = append([]int(nil), col...)
	}

	return out
}

// At returns the value at (row, col).
func (t *Table) At(row, col int) (int, error) {
	if col < 0 || col >= len(t.cols) || row < 0 || row >= t.rows {
		return 0, fmt.Errorf("At(%d,%d): table is %dx%d: %w", row, col, t.rows, len(t.cols), ErrOutOfRange)
	}

	return t.cols[col][row], nil
}

// Row returns a copy of row r across all columns (row-major view used by
// writers).
func (t *Table) Row(r int) ([]int, error) {
	if r < 0 || r >= t.rows {
		return nil, fmt.Errorf("Row(%d): %d rows: %w", r, t.rows, ErrOutOfRange)
	}
	out := make([]int, len(t.cols))
	for c, col := range t.cols {
		out[c] = col[r]
	}

	return out, nil
}

// Each calls fn for every cell in scan order: columns left→right, rows
// top→bottom. Iteration stops early when fn returns false.
func (t *Table) Each(fn func(col int, name string, row int, value int) bool) {
	for c, col := range t.cols {
		for r, v := range col {
			if !fn(c, t.names[c], r, v) {
				return
			}
		}
	}
}

// Equal reports whether t and o have the same names and cells.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.rows != o.rows || len(t.cols) != len(o.cols) {
		return false
	}
	for c := range t.cols {
		if t.names[c] != o.names[c] {
			return false
		}
		for r := range t.cols[c] {
			if t.cols[c][r] != o.cols[c][r] {
				return false
			}
		}
	}

	return true
}
