// SPDX-License-Identifier: MIT
// Package: core
//
// view.go — derived graphs.

package core

// Subgraph returns a new Graph with the same flags, every vertex of g (in
// the same order, metadata shallow-copied) and only the edges for which
// keep returns true. Kept edges receive fresh IDs in their original order.
// Complexity: O(V+E).
func (g *Graph) Subgraph(keep func(*Edge) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.weighted, out.allowMulti = g.weighted, g.allowMulti
	for _, id := range g.order {
		out.addVertexLocked(id)
		for k, v := range g.vertices[id].Metadata {
			out.vertices[id].Metadata[k] = v
		}
	}
	for _, e := range g.edges {
		cp := *e
		if !keep(&cp) {
			continue
		}
		out.nextEdgeID++
		cp.ID = edgeID(out.nextEdgeID)
		pos := len(out.edges)
		out.edges = append(out.edges, &cp)
		out.link(cp.From, cp.To, pos)
		out.link(cp.To, cp.From, pos)
	}

	return out
}

// Stats returns a snapshot of the graph's shape and flags.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
		Weighted:    g.weighted,
		MultiEdges:  g.allowMulti,
	}
}
