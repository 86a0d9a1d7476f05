// SPDX-License-Identifier: MIT
// Package: cooccur
//
// index.go — Index (value → column names) and its two builders.
//
// Complexity: both builders are O(R·C) time; FindRepeated stores one name
// per cell, FindShared at most one per (value, column).

package cooccur

import (
	"fmt"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// Entry is one indexed value and the columns it was found in.
type Entry struct {
	Value   int      `json:"value"`
	Columns []string `json:"columns"`
}

// Index maps values to column names, ordered by first occurrence.
type Index struct {
	entries []Entry
	pos     map[int]int // value → position in entries
}

func newIndex(capacity int) *Index {
	return &Index{pos: make(map[int]int, capacity)}
}

func (x *Index) append(v int, col string) {
	p, ok := x.pos[v]
	if !ok {
		p = len(x.entries)
		x.pos[v] = p
		x.entries = append(x.entries, Entry{Value: v})
	}
	x.entries[p].Columns = append(x.entries[p].Columns, col)
}

// Len returns the number of indexed values.
func (x *Index) Len() int { return len(x.entries) }

// Values returns the indexed values in first-occurrence order.
func (x *Index) Values() []int {
	out := make([]int, len(x.entries))
	for i, e := range x.entries {
		out[i] = e.Value
	}

	return out
}

// Columns returns a copy of the column list of v.
func (x *Index) Columns(v int) ([]string, bool) {
	p, ok := x.pos[v]
	if !ok {
		return nil, false
	}

	return append([]string(nil), x.entries[p].Columns...), true
}

// Entries returns a deep copy of all entries in first-occurrence order.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	for i, e := range x.entries {
		out[i] = Entry{Value: e.Value, Columns: append([]string(nil), e.Columns...)}
	}

	return out
}

// FindRepeated indexes every value of t with one column name per
// occurrence. No filtering is applied.
func FindRepeated(t *table.Table) (*Index, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodFindRepeated, ErrNilTable)
	}
	x := newIndex(t.Len())
	t.Each(func(_ int, name string, _ int, v int) bool {
		x.append(v, name)
		return true
	})

	return x, nil
}

// FindShared indexes the values of t that appear in more than one distinct
// column, listing each column once in scan order.
func FindShared(t *table.Table) (*Index, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodFindShared, ErrNilTable)
	}
	seen := make(map[int]map[string]struct{}, t.Len())
	all := newIndex(t.Len())
	t.Each(func(_ int, name string, _ int, v int) bool {
		cols, ok := seen[v]
		if !ok {
			cols = make(map[string]struct{}, 1)
			seen[v] = cols
		}
		if _, dup := cols[name]; !dup {
			cols[name] = struct{}{}
			all.append(v, name)
		}
		return true
	})

	x := newIndex(len(all.entries))
	for _, e := range all.entries {
		if len(e.Columns) < 2 {
			continue
		}
		x.pos[e.Value] = len(x.entries)
		x.entries = append(x.entries, e)
	}

	return x, nil
}
