// SPDX-License-Identifier: MIT
// Package: cooccur
//
// graph.go — column co-occurrence graph and column clusters.
//
// Graph shape:
//   • undirected, weighted, multi-edge core.Graph;
//   • vertices: every column named by the index, in first-appearance order;
//   • edges: one per (value, column pair), Weight = value, pairs in list
//     order (i<j); a column listed twice for one value is linked once.
//   • vertex metadata MetaShared: number of indexed values touching the column.
//
// Path walks the graph breadth-first, so every returned chain has the fewest
// hops; ties follow vertex insertion order.

package cooccur

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/bfs"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/core"
)

// MetaShared is the vertex metadata key holding the number of indexed
// values a column takes part in.
const MetaShared = "shared"

// BuildGraph turns x (normally from FindShared) into a co-occurrence graph.
// Complexity: O(Σ L²) over the entries' list lengths L.
func BuildGraph(x *Index) (*core.Graph, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, ErrNilIndex)
	}
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	shared := make(map[string]int)
	for _, e := range x.entries {
		cols := distinct(e.Columns)
		for _, c := range cols {
			if err := g.AddVertex(c); err != nil {
				return nil, fmt.Errorf("%s: column %q: %w", methodBuildGraph, c, err)
			}
			shared[c]++
		}
		for i := 0; i < len(cols); i++ {
			for j := i + 1; j < len(cols); j++ {
				if _, err := g.AddEdge(cols[i], cols[j], int64(e.Value)); err != nil {
					return nil, fmt.Errorf("%s: value %d: %w", methodBuildGraph, e.Value, err)
				}
			}
		}
	}
	for c, n := range shared {
		if err := g.SetVertexMetadata(c, MetaShared, n); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// ValueGraph returns the subgraph of g holding only the edges of value v.
func ValueGraph(g *core.Graph, v int) *core.Graph {
	return g.Subgraph(func(e *core.Edge) bool { return e.Weight == int64(v) })
}

// Clusters groups the columns of g into connected components: columns in
// one cluster are linked by a chain of shared values.
func Clusters(g *core.Graph) ([][]string, error) {
	groups, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodClusters, err)
	}

	return groups, nil
}

// Link is one hop of a column path: the values From and To share, in
// edge insertion order.
type Link struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Values []int  `json:"values"`
}

// Path returns the shortest chain of columns linking from to to, one Link
// per hop. A column unknown to g, or one in another cluster, yields
// ErrNoPath. from == to yields an empty chain.
// Complexity: O(V + E·log d).
func Path(ctx context.Context, g *core.Graph, from, to string) ([]Link, error) {
	res, err := bfs.Walk(g, from, bfs.WithContext(ctx))
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return nil, fmt.Errorf("%s: column %q: %w", methodPath, from, ErrNoPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	cols, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%s: %q to %q: %w", methodPath, from, to, ErrNoPath)
	}

	links := make([]Link, 0, len(cols)-1)
	for i := 1; i < len(cols); i++ {
		edges := g.EdgesBetween(cols[i-1], cols[i])
		values := make([]int, len(edges))
		for k, e := range edges {
			values[k] = int(e.Weight)
		}
		links = append(links, Link{From: cols[i-1], To: cols[i], Values: values})
	}

	return links, nil
}

func distinct(cols []string) []string {
	seen := make(map[string]struct{}, len(cols))
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
