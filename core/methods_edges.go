// SPDX-License-Identifier: MIT
// Package: core
//
// methods_edges.go — edge insertion and edge queries.
//
// AddEdge contract:
//   • Missing endpoints are created on the fly.
//   • weight ≠ 0 on an unweighted graph ⇒ ErrBadWeight.
//   • from == to ⇒ ErrLoopNotAllowed.
//   • A second edge between the same endpoints without WithMultiEdges ⇒
//     ErrMultiEdgeNotAllowed.
//   • Failed calls leave the graph untouched.

package core

import "strconv"

// AddEdge inserts an edge and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &Edge{
		ID:     edgeID(g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
	}
	pos := len(g.edges)
	g.edges = append(g.edges, e)
	g.link(from, to, pos)
	g.link(to, from, pos)

	return e.ID, nil
}

// edgeID formats the n-th edge ID ("e1", "e2", …).
func edgeID(n uint64) string { return "e" + strconv.FormatUint(n, 10) }

func (g *Graph) link(from, to string, pos int) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string][]int)
		g.adjacency[from] = inner
	}
	inner[to] = append(inner[to], pos)
}

// EdgesBetween returns copies of every edge connecting from and to, in
// insertion order. The argument order does not matter.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	positions := g.adjacency[from][to]
	out := make([]*Edge, 0, len(positions))
	for _, p := range positions {
		e := *g.edges[p]
		out = append(out, &e)
	}

	return out
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		cp := *e
		out[i] = &cp
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
