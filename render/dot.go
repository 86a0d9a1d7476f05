// SPDX-License-Identifier: MIT
// Package: render
//
// dot.go — Graphviz DOT export of a co-occurrence graph.
//
// Output layout:
//   • one comment line with the title;
//   • default node attributes: polygon, white, filled, Arial;
//   • one node statement per vertex (insertion order) with a random polygon
//     and colour;
//   • one edge statement per edge (insertion order) labelled with the edge
//     weight and a random colour.
// Graphs are undirected, so the output is always `graph` with `--`.

package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/core"
)

// ErrNilGraph is returned by WriteDOT for a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

// WriteDOT writes g to w in DOT format.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newConfig(opts)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %s\n", cfg.title)
	fmt.Fprintln(bw, "graph {")
	fmt.Fprintln(bw, "\tnode [shape=polygon color=white style=filled fontname=Arial]")
	for _, id := range g.Vertices() {
		p := RandomPolygon(cfg.rng)
		fmt.Fprintf(bw, "\t%s [label=%s sides=%d distortion=%s orientation=%d skew=%s color=%s]\n",
			quote(id), quote(id), p.Sides, ftoa(p.Distortion), p.Orientation, ftoa(p.Skew),
			quote(RandomColor(cfg.rng)))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "\t%s -- %s [label=%s color=%s]\n",
			quote(e.From), quote(e.To),
			quote(strconv.FormatInt(e.Weight, 10)), quote(RandomColor(cfg.rng)))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }
