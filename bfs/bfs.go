// SPDX-License-Identifier: MIT
// Package: bfs
//
// bfs.go — queue-based traversal and the component split.

package bfs

import (
	"fmt"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable traversal state. visited is shared across the
// walks of one Components call.
type walker struct {
	graph   *core.Graph
	opts    options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g from startID.
func Walk(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%q: %w", startID, ErrStartVertexNotFound)
	}
	w := newWalker(g, o, make(map[string]bool))

	return w.res, w.run(startID)
}

// Components splits g into connected groups of vertices. Each group is in
// visit order; groups are ordered by their first vertex.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	visited := make(map[string]bool, g.VertexCount())
	var groups [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited)
		if err := w.run(id); err != nil {
			return nil, err
		}
		groups = append(groups, w.res.Order)
	}

	return groups, nil
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func newWalker(g *core.Graph, o options, visited map[string]bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		visited: visited,
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

func (w *walker) run(start string) error {
	w.push(start, 0, "")
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] {
				continue
			}
			w.push(nbr, item.depth+1, item.id)
		}
	}

	return nil
}

func (w *walker) push(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}
