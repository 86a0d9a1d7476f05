// SPDX-License-Identifier: MIT
// Package: cooccur
//
// combinations.go — Report rows: every size-r combination (r = 2..L) of
// each entry's column list.
//
// Ordering (deterministic):
//   • entries in Index order;
//   • within an entry, r ascending;
//   • within r, combinations lexicographic by list position, so duplicate
//     names in a raw list yield distinct rows.

package cooccur

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// LabelSeparator joins column names in Row.Label.
const LabelSeparator = ", "

// ctxCheckRows is how many rows are emitted between context checks; a
// power of two.
const ctxCheckRows = 1 << 12

// Row is one (value, column combination) pair of a report.
type Row struct {
	Value   int
	Columns []string
}

// Label returns the column names joined with LabelSeparator.
func (r Row) Label() string { return strings.Join(r.Columns, LabelSeparator) }

// Report is an ordered list of rows.
type Report []Row

// CombinationCount returns 2^L - L - 1, the number of rows produced for a
// list of length L, saturating at math.MaxUint64. L < 2 yields 0.
func CombinationCount(l int) uint64 {
	if l < 2 {
		return 0
	}
	if l >= 64 {
		return math.MaxUint64
	}

	return (uint64(1) << uint(l)) - uint64(l) - 1
}

// ReportSize returns the number of rows EnumerateCombinations would emit
// for x, saturating at math.MaxUint64.
func ReportSize(x *Index) uint64 {
	if x == nil {
		return 0
	}
	var total uint64
	for _, e := range x.entries {
		n := CombinationCount(len(e.Columns))
		if total > math.MaxUint64-n {
			return math.MaxUint64
		}
		total += n
	}

	return total
}

// EnumerateCombinations builds the report of x.
// Errors: ErrNilIndex, ErrTooManyCombinations (see WithMaxRows), or the
// context error (see WithContext).
func EnumerateCombinations(x *Index, opts ...Option) (Report, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, ErrNilIndex)
	}
	cfg := newConfig(opts)
	size := ReportSize(x)
	if cfg.maxRows > 0 && size > cfg.maxRows {
		return nil, fmt.Errorf("%s: %d rows > limit %d: %w", methodEnumerate, size, cfg.maxRows, ErrTooManyCombinations)
	}

	out := make(Report, 0, int(min(size, 1<<16)))
	for _, e := range x.entries {
		if err := cfg.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: value %d: %w", methodEnumerate, e.Value, err)
		}
		for r := 2; r <= len(e.Columns); r++ {
			var err error
			if out, err = appendCombinations(cfg.ctx, out, e.Value, e.Columns, r); err != nil {
				return nil, fmt.Errorf("%s: value %d: %w", methodEnumerate, e.Value, err)
			}
		}
	}

	return out, nil
}

// appendCombinations appends every r-combination of cols, in lexicographic
// position order, as rows for value v. ctx is checked every ctxCheckRows
// rows of out.
func appendCombinations(ctx context.Context, out Report, v int, cols []string, r int) (Report, error) {
	n := len(cols)
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		row := Row{Value: v, Columns: make([]string, r)}
		for i, p := range idx {
			row.Columns[i] = cols[p]
		}
		out = append(out, row)
		if len(out)&(ctxCheckRows-1) == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}

		// advance: rightmost position that can still move
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
