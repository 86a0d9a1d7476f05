// SPDX-License-Identifier: MIT
// Package: generator
//
// stages.go — the three passes over the working set (cols + Pool).
//
// Working set:
//   • cols[c] is column c; every stage keeps len(cols[c]) == Count.
//   • pool records every value ever written by stages 1 and 2.
//   • stage 3 keeps a per-column value count next to cols.
//
// Determinism:
//   • Stage 1 draws columns in index order.
//   • Stage 2 visits over-budget values in first-appearance scan order
//     (columns left→right, rows top→bottom), never in map order.
//   • Stage 3 visits common values in sampled order, columns in index order.

package generator

import "fmt"

// sampleColumns is stage 1: Columns independent draws of Count distinct
// values from [Start, End]. cfg must already be validated.
// Complexity: O(Columns·Count) time and space.
func sampleColumns(cfg Config, rng Rand) [][]int {
	universe := cfg.Universe()
	cols := make([][]int, cfg.Columns)
	for c := range cols {
		cols[c] = sampleDistinct(rng, cfg.Start, universe, cfg.Count)
	}

	return cols
}

// applyBudget is stage 2. Occurrence counts are taken once, before any
// replacement. For each value above budget it removes one occurrence at a
// time (first column holding it, first position in that column), shifts
// the rest of the column left and appends a value absent from pool.
//
// Fresh values never collide with anything in the columns, so the
// occurrences removed for v are exactly its first excess occurrences in
// scan order, and each column ends as its kept values followed by its
// fresh values in removal order. applyBudget builds that result directly:
// one scan records the cells of over-budget values, and every touched
// column is compacted once at the end.
//
// Returns the number of replacements performed. On ErrReplacementExhausted
// the replacements made so far remain applied.
//
// Complexity: O(T + R + U) where T = total cells, R = replacements and U
// is the universe, scanned at most once and only when it is crowded
// (U < 2·Distinct ≤ 2·(T+R)).
func applyBudget(cols [][]int, pool *Pool, cfg Config, rng Rand) (int, error) {
	budget := cfg.Budget()
	order, counts := countInScanOrder(cols)

	cells := make(map[int][]cell)
	for c, col := range cols {
		for r, v := range col {
			if counts[v] > budget {
				cells[v] = append(cells[v], cell{col: c, row: r})
			}
		}
	}
	if len(cells) == 0 {
		return 0, nil
	}

	removed := make([][]bool, len(cols))
	appended := make([][]int, len(cols))
	picker := newFreePicker(rng, cfg.Start, cfg.Universe(), pool)
	replaced := 0
	var err error
scan:
	for _, v := range order {
		at := cells[v]
		if len(at) <= budget {
			continue
		}
		for i, p := range at[:len(at)-budget] {
			fresh, perr := picker.take()
			if perr != nil {
				err = fmt.Errorf("%s: value %d (%d over budget %d): %w",
					MethodBudget, v, len(at)-budget-i, budget, perr)
				break scan
			}
			if removed[p.col] == nil {
				removed[p.col] = make([]bool, len(cols[p.col]))
			}
			removed[p.col][p.row] = true
			appended[p.col] = append(appended[p.col], fresh)
			replaced++
		}
	}

	for c, drop := range removed {
		if drop == nil {
			continue
		}
		col := cols[c]
		w := 0
		for r, v := range col {
			if !drop[r] {
				col[w] = v
				w++
			}
		}
		copy(col[w:], appended[c])
	}

	return replaced, err
}

type cell struct{ col, row int }

// injectCommon is stage 3: ensurePresent for every common value, repeated
// passes times. Returns the number of overwritten cells.
func injectCommon(cols [][]int, common []int, passes int, rng Rand) int {
	counts := columnCounts(cols)
	written := 0
	for p := 0; p < passes; p++ {
		for _, v := range common {
			written += ensurePresent(cols, counts, v, rng)
		}
	}

	return written
}

// ensurePresent overwrites one uniformly chosen position of every column
// that lacks v; counts[c] is kept equal to the multiset of cols[c]. The
// overwritten value is discarded, and nothing prevents a later call from
// overwriting v again, so a single call does not guarantee v survives in
// every column once other values are injected.
func ensurePresent(cols [][]int, counts []map[int]int, v int, rng Rand) int {
	written := 0
	for c, col := range cols {
		if len(col) == 0 || counts[c][v] > 0 {
			continue
		}
		pos := rng.Intn(len(col))
		counts[c][col[pos]]--
		col[pos] = v
		counts[c][v]++
		written++
	}

	return written
}

func columnCounts(cols [][]int) []map[int]int {
	counts := make([]map[int]int, len(cols))
	for c, col := range cols {
		counts[c] = make(map[int]int, len(col))
		for _, v := range col {
			counts[c][v]++
		}
	}

	return counts
}

// freePicker draws replacement values uniformly from the members of
// [start, start+universe) absent from pool, adding each one it returns.
//
// While at least half of the universe is free it uses bounded rejection
// sampling (expected ≤ 2 draws), falling back to an exact scan for the
// k-th free value after maxRejections misses. Once the universe is
// crowded it lists the free values once and then draws from the list with
// swap-remove. Every branch is uniform over the free values.
type freePicker struct {
	rng      Rand
	start    int
	universe int
	pool     *Pool
	free     []int // nil until the universe is crowded
}

func newFreePicker(rng Rand, start, universe int, pool *Pool) *freePicker {
	return &freePicker{rng: rng, start: start, universe: universe, pool: pool}
}

func (f *freePicker) take() (int, error) {
	v, err := f.next()
	if err != nil {
		return 0, err
	}
	f.pool.Add(v)

	return v, nil
}

func (f *freePicker) next() (int, error) {
	if f.free != nil {
		return f.fromList()
	}
	free := f.universe - f.pool.Distinct()
	if free <= 0 {
		return 0, ErrReplacementExhausted
	}
	if free < f.universe-free {
		f.free = make([]int, 0, free)
		for i := 0; i < f.universe; i++ {
			if v := f.start + i; !f.pool.Contains(v) {
				f.free = append(f.free, v)
			}
		}
		return f.fromList()
	}

	for try := 0; try < maxRejections; try++ {
		v := f.start + f.rng.Intn(f.universe)
		if !f.pool.Contains(v) {
			return v, nil
		}
	}
	k := f.rng.Intn(free)
	for i := 0; i < f.universe; i++ {
		v := f.start + i
		if f.pool.Contains(v) {
			continue
		}
		if k == 0 {
			return v, nil
		}
		k--
	}

	return 0, ErrReplacementExhausted
}

func (f *freePicker) fromList() (int, error) {
	n := len(f.free)
	if n == 0 {
		return 0, ErrReplacementExhausted
	}
	i := f.rng.Intn(n)
	v := f.free[i]
	f.free[i] = f.free[n-1]
	f.free = f.free[:n-1]

	return v, nil
}

// countInScanOrder returns distinct values in first-appearance order and
// their occurrence counts.
func countInScanOrder(cols [][]int) ([]int, map[int]int) {
	counts := make(map[int]int)
	order := make([]int, 0)
	for _, col := range cols {
		for _, v := range col {
			if counts[v] == 0 {
				order = append(order, v)
			}
			counts[v]++
		}
	}

	return order, counts
}
