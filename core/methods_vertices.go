// SPDX-License-Identifier: MIT
// Package: core
//
// methods_vertices.go — vertex lifecycle and metadata.

package core

import "fmt"

// AddVertex inserts a vertex with the given id. Adding an existing id is a
// no-op. Returns ErrEmptyVertexID for "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// SetVertexMetadata stores key=value on vertex id.
func (g *Graph) SetVertexMetadata(id, key string, value interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexMetadata %q: %w", id, ErrVertexNotFound)
	}
	v.Metadata[key] = value

	return nil
}

// VertexMetadata returns a shallow copy of the metadata of vertex id.
func (g *Graph) VertexMetadata(id string) (map[string]interface{}, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("VertexMetadata %q: %w", id, ErrVertexNotFound)
	}
	out := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		out[k] = val
	}

	return out, nil
}
