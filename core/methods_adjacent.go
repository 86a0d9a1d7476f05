// SPDX-License-Identifier: MIT
// Package: core
//
// methods_adjacent.go — neighborhood queries.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the distinct vertices reachable over one edge from
// id, ordered by vertex insertion order. Parallel edges contribute one
// entry.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("NeighborIDs %q: %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })

	return out, nil
}
