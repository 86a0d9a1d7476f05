// SPDX-License-Identifier: MIT
// Package: table
//
// stats.go — derived views: flat pool, occurrence counts, frequency ranking,
// per-column uniqueness and a content fingerprint.

package table

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash"
)

// Frequency is one value together with its total occurrence count.
type Frequency struct {
	Value int
	Count int
}

// Values returns every cell in scan order (the flat pool of all values).
func (t *Table) Values() []int {
	out := make([]int, 0, t.Len())
	for _, col := range t.cols {
		out = append(out, col...)
	}

	return out
}

// Counts returns the total occurrence count of every value across all columns.
func (t *Table) Counts() map[int]int {
	counts := make(map[int]int, t.Len())
	for _, col := range t.cols {
		for _, v := range col {
			counts[v]++
		}
	}

	return counts
}

// Frequencies returns values ordered by descending count, ties broken by
// ascending value. Values with count < minCount are omitted.
func (t *Table) Frequencies(minCount int) []Frequency {
	counts := t.Counts()
	out := make([]Frequency, 0, len(counts))
	for v, n := range counts {
		if n >= minCount {
			out = append(out, Frequency{Value: v, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	return out
}

// ColumnUnique reports whether column c holds no repeated value.
// Out-of-range c reports false.
func (t *Table) ColumnUnique(c int) bool {
	if c < 0 || c >= len(t.cols) {
		return false
	}
	seen := make(map[int]struct{}, t.rows)
	for _, v := range t.cols[c] {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

// Fingerprint hashes names and cells (xxhash64 over a little-endian packing).
// Equal tables have equal fingerprints; it identifies persisted runs and
// serves as an HTTP entity tag.
func (t *Table) Fingerprint() uint64 {
	buf := make([]byte, 0, 16+8*t.Len())
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(t.cols)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.rows))
	for c, col := range t.cols {
		buf = append(buf, t.names[c]...)
		buf = append(buf, 0)
		for _, v := range col {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
		}
	}

	return xxhash.Sum64(buf)
}
