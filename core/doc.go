// Package core provides a small, thread-safe in-memory graph used to model
// column co-occurrence: vertices are table columns, and every edge records
// one value shared by its two endpoint columns.
//
// The Graph G = (V,E) supports:
//
//   - Undirected edges; self-loops are rejected
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Per-vertex metadata (SetVertexMetadata / VertexMetadata)
//   - Sequential Edge.ID generation ("e1", "e2", …)
//
// Determinism:
//
//	Vertices() and NeighborIDs() follow vertex insertion order; Edges()
//	follows edge insertion order. Building the same graph twice yields the
//	same iteration order everywhere, so renderers and traversals are stable.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	EdgesBetween(from, to string) []*Edge                       // O(k)
//	NeighborIDs(id string) ([]string, error)                    // O(d·log d)
//	Vertices() []string                                         // O(V)
//	Edges() []*Edge                                             // O(E)
//	Subgraph(keep func(*Edge) bool) *Graph                      // O(V+E)
//	Stats() GraphStats                                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrBadWeight           - non-zero weight on unweighted graph
//	ErrLoopNotAllowed      - self-loop
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges disabled
package core
