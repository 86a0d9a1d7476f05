// SPDX-License-Identifier: MIT
// Package: render
//
// palette.go — one random colour per value occurring more than once.

package render

import (
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// Palette maps repeated values to colours. Values are assigned in
// table.Frequencies order (count descending, value ascending), so a given
// source yields the same palette for the same table.
type Palette struct {
	colors map[int]string
	order  []table.Frequency
}

// NewPalette colours every value of t with a total count above one.
// A nil table yields an empty palette.
func NewPalette(t *table.Table, opts ...Option) *Palette {
	p := &Palette{colors: make(map[int]string)}
	if t == nil {
		return p
	}
	cfg := newConfig(opts)
	p.order = t.Frequencies(2)
	for _, f := range p.order {
		p.colors[f.Value] = RandomColor(cfg.rng)
	}

	return p
}

// Color returns the colour assigned to v.
func (p *Palette) Color(v int) (string, bool) {
	c, ok := p.colors[v]
	return c, ok
}

// Len returns the number of coloured values.
func (p *Palette) Len() int { return len(p.colors) }

// Legend returns the coloured values with their counts, most frequent first.
func (p *Palette) Legend() []table.Frequency {
	return append([]table.Frequency(nil), p.order...)
}
