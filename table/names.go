// SPDX-License-Identifier: MIT
// Package: table
//
// names.go — the "Nr<k>" column naming convention.
//
// The writer of a persisted table and the reader that re-materializes it must
// agree on column names exactly, otherwise the analyzer groups values under
// different labels. ColumnName is the single source of that convention.

package table

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnPrefix is the textual prefix of generated column names.
const ColumnPrefix = "Nr"

// ColumnName returns the generated name of the zero-based column idx:
// 0→"Nr1", 1→"Nr2", 41→"Nr42".
// Panics if idx < 0.
func ColumnName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("table: ColumnName idx must be ≥ 0, got %d", idx))
	}

	return ColumnPrefix + strconv.Itoa(idx+1)
}

// ColumnNames returns the generated names for n columns.
// Complexity: O(n) time and space.
func ColumnNames(n int) []string {
	if n <= 0 {
		return []string{}
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = ColumnName(i)
	}

	return names
}

// ParseColumnName is the inverse of ColumnName: "Nr3"→2.
// Returns ErrBadColumnName for anything that ColumnName cannot produce
// (missing prefix, non-decimal suffix, zero, leading '+' or '0').
func ParseColumnName(name string) (int, error) {
	digits, ok := strings.CutPrefix(name, ColumnPrefix)
	if !ok || digits == "" || digits[0] < '1' || digits[0] > '9' {
		return 0, fmt.Errorf("ParseColumnName(%q): %w", name, ErrBadColumnName)
	}
	k, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("ParseColumnName(%q): %v: %w", name, err, ErrBadColumnName)
	}

	return k - 1, nil
}
