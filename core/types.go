// SPDX-License-Identifier: MIT
// Package: core
//
// types.go — Vertex, Edge, Graph, GraphOption, sentinel errors, NewGraph.
//
// Locking:
//   • One sync.RWMutex guards every map and slice of a Graph.
//   • Returned *Edge / *Vertex values are copies; mutating them does not
//     affect the Graph.

package core

import "sync"

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data (e.g. per-column counters).
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint IDs in the order AddEdge received them;
	// the edge itself is undirected.
	From string
	To   string

	// Weight is the payload of the edge; co-occurrence graphs store the
	// shared value here.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory graph data structure.
type Graph struct {
	mu sync.RWMutex

	weighted   bool
	allowMulti bool

	nextEdgeID uint64
	order      []string           // vertex IDs in insertion order
	index      map[string]int     // vertex ID → position in order
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      []*Edge            // insertion order

	// adjacency[from][to] = edge positions in edges; every edge is
	// recorded under both endpoints.
	adjacency map[string]map[string][]int
}

// GraphStats is a constant-time snapshot of the graph's shape and flags.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	Weighted    bool
	MultiEdges  bool
}

// NewGraph creates an empty Graph with the given options.
// Edges are undirected and self-loops are always rejected. By default the
// Graph is unweighted with no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[string]int),
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
